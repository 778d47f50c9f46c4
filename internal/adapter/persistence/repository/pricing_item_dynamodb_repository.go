package repository

import (
	"context"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricingItemsTableName = "pricing_items"
	pricingItemsOutfitterIndex   = "outfitter_id-index"
)

type pricingItemRow struct {
	ID            string   `dynamodbav:"id"`
	OutfitterID   string   `dynamodbav:"outfitter_id"`
	Title         string   `dynamodbav:"title"`
	AmountUSD     float64  `dynamodbav:"amount_usd"`
	Category      string   `dynamodbav:"category"`
	AddonType     string   `dynamodbav:"addon_type,omitempty"`
	IncludedDays  *int     `dynamodbav:"included_days,omitempty"`
	SpeciesFilter []string `dynamodbav:"species_filter,omitempty"`
	WeaponFilter  []string `dynamodbav:"weapon_filter,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// PricingItemDynamoRepository reads the pricing catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: outfitter_id-index (PK: outfitter_id)

type PricingItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingItemRepository = (*PricingItemDynamoRepository)(nil)

func NewPricingItemDynamoRepository(ddb *dynamodb.Client) *PricingItemDynamoRepository {
	return &PricingItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_ITEMS_TABLE", defaultPricingItemsTableName),
	}
}

func (r *PricingItemDynamoRepository) ListByOutfitter(ctx context.Context, outfitterID string) ([]entities.PricingItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pricingItemsOutfitterIndex),
		KeyConditionExpression: aws.String("outfitter_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": str(outfitterID),
		},
	})

	items := make([]entities.PricingItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var row pricingItemRow
			if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
				return nil, err
			}
			items = append(items, fromPricingItemRow(row))
		}
	}
	return items, nil
}

func fromPricingItemRow(row pricingItemRow) entities.PricingItem {
	return entities.PricingItem{
		ID:            row.ID,
		OutfitterID:   row.OutfitterID,
		Title:         row.Title,
		AmountUSD:     row.AmountUSD,
		Category:      row.Category,
		AddonType:     entities.AddonType(row.AddonType),
		IncludedDays:  row.IncludedDays,
		SpeciesFilter: row.SpeciesFilter,
		WeaponFilter:  row.WeaponFilter,
		CreatedAt:     parseTime(row.CreatedAt),
		UpdatedAt:     parseTime(row.UpdatedAt),
	}
}
