package repository

import (
	"context"
	"fmt"
	"strings"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHuntsTableName = "hunts"

type huntRow struct {
	ID                    string         `dynamodbav:"id"`
	OutfitterID           string         `dynamodbav:"outfitter_id"`
	ClientEmail           string         `dynamodbav:"client_email"`
	Species               string         `dynamodbav:"species"`
	Weapon                string         `dynamodbav:"weapon"`
	HuntCode              string         `dynamodbav:"hunt_code"`
	SeasonStart           string         `dynamodbav:"season_start,omitempty"`
	SeasonEnd             string         `dynamodbav:"season_end,omitempty"`
	SelectedPricingItemID string         `dynamodbav:"selected_pricing_item_id,omitempty"`
	AddonSelections       map[string]int `dynamodbav:"addon_selections,omitempty"`
	StartTime             string         `dynamodbav:"start_time,omitempty"`
	EndTime               string         `dynamodbav:"end_time,omitempty"`
	UpdatedAt             string         `dynamodbav:"updated_at"`
}

// HuntDynamoRepository persists the hunt calendar projection in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type HuntDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHuntRepository = (*HuntDynamoRepository)(nil)

func NewHuntDynamoRepository(ddb *dynamodb.Client) *HuntDynamoRepository {
	return &HuntDynamoRepository{
		ddb:       ddb,
		tableName: huntsTableName(),
	}
}

func (r *HuntDynamoRepository) GetByID(ctx context.Context, id string) (entities.Hunt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Hunt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Hunt{}, nil
	}

	var row huntRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.Hunt{}, err
	}
	return fromHuntRow(row), nil
}

func huntsTableName() string {
	return getenvDefault("HUNTS_TABLE", defaultHuntsTableName)
}

// bookingUpdate builds the update that writes only the booking fields of a
// hunt, guarded on the hunt existing.
func bookingUpdate(table string, h entities.Hunt) (*types.Update, error) {
	addons, err := attributevalue.Marshal(addonsToRow(h.AddonSelections))
	if err != nil {
		return nil, err
	}

	sets := []string{"#plan = :plan", "#addons = :addons", "#updated_at = :updated_at"}
	var removes []string
	values := map[string]types.AttributeValue{
		":plan":       str(h.SelectedPricingItemID),
		":addons":     addons,
		":updated_at": str(formatTime(h.UpdatedAt)),
	}
	if h.StartTime != nil {
		sets = append(sets, "#start_time = :start_time")
		values[":start_time"] = str(formatTimePtr(h.StartTime))
	} else {
		removes = append(removes, "#start_time")
	}
	if h.EndTime != nil {
		sets = append(sets, "#end_time = :end_time")
		values[":end_time"] = str(formatTimePtr(h.EndTime))
	} else {
		removes = append(removes, "#end_time")
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}

	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": str(h.ID),
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#plan":       "selected_pricing_item_id",
			"#addons":     "addon_selections",
			"#start_time": "start_time",
			"#end_time":   "end_time",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: values,
	}, nil
}

// UpdateBooking writes only the booking fields; the rest of the hunt belongs
// to the calendar.
func (r *HuntDynamoRepository) UpdateBooking(ctx context.Context, h entities.Hunt) (entities.Hunt, error) {
	upd, err := bookingUpdate(r.tableName, h)
	if err != nil {
		return entities.Hunt{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 upd.TableName,
		Key:                       upd.Key,
		ConditionExpression:       upd.ConditionExpression,
		UpdateExpression:          upd.UpdateExpression,
		ExpressionAttributeNames:  upd.ExpressionAttributeNames,
		ExpressionAttributeValues: upd.ExpressionAttributeValues,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Hunt{}, fmt.Errorf("hunt %s not found", h.ID)
		}
		return entities.Hunt{}, err
	}

	var row huntRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &row); err != nil {
		return entities.Hunt{}, err
	}
	return fromHuntRow(row), nil
}

func addonsToRow(m map[entities.AddonType]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func addonsFromRow(m map[string]int) map[entities.AddonType]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[entities.AddonType]int, len(m))
	for k, v := range m {
		out[entities.AddonType(k)] = v
	}
	return out
}

func fromHuntRow(row huntRow) entities.Hunt {
	h := entities.Hunt{
		ID:                    row.ID,
		OutfitterID:           row.OutfitterID,
		ClientEmail:           row.ClientEmail,
		Species:               row.Species,
		Weapon:                row.Weapon,
		HuntCode:              row.HuntCode,
		SelectedPricingItemID: row.SelectedPricingItemID,
		AddonSelections:       addonsFromRow(row.AddonSelections),
		StartTime:             parseTimePtr(row.StartTime),
		EndTime:               parseTimePtr(row.EndTime),
		UpdatedAt:             parseTime(row.UpdatedAt),
	}
	if row.SeasonStart != "" && row.SeasonEnd != "" {
		h.SeasonWindow = &entities.DateWindow{Start: parseTime(row.SeasonStart), End: parseTime(row.SeasonEnd)}
	}
	return h
}
