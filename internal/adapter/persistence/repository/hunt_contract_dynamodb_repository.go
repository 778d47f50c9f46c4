package repository

import (
	"context"
	"fmt"
	"log"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContractsTableName = "hunt_contracts"
	defaultHuntLocksTableName = "contract_hunt_locks"
)

type completionRow struct {
	PricingItemID   string         `dynamodbav:"pricing_item_id"`
	AddonSelections map[string]int `dynamodbav:"addon_selections,omitempty"`
	StartDate       string         `dynamodbav:"start_date"`
	EndDate         string         `dynamodbav:"end_date"`
	Notes           string         `dynamodbav:"notes,omitempty"`
	CapturedAt      string         `dynamodbav:"captured_at"`
}

type contractRow struct {
	ID             string         `dynamodbav:"id"`
	OutfitterID    string         `dynamodbav:"outfitter_id"`
	HuntID         string         `dynamodbav:"hunt_id,omitempty"`
	ClientEmail    string         `dynamodbav:"client_email"`
	TemplateID     string         `dynamodbav:"template_id,omitempty"`
	Status         string         `dynamodbav:"status"`
	Completion     *completionRow `dynamodbav:"client_completion_data,omitempty"`
	SignatureRef   string         `dynamodbav:"signature_ref,omitempty"`
	ReviewNote     string         `dynamodbav:"review_note,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
	ClientSignedAt string         `dynamodbav:"client_signed_at,omitempty"`
	AdminSignedAt  string         `dynamodbav:"admin_signed_at,omitempty"`
	CancelledAt    string         `dynamodbav:"cancelled_at,omitempty"`
	Version        int64          `dynamodbav:"version"`
}

type huntLockRow struct {
	HuntID     string `dynamodbav:"hunt_id"`
	ContractID string `dynamodbav:"contract_id"`
}

// HuntContractDynamoRepository persists HuntContract entities in DynamoDB.
//
// Table requirements:
//   - contracts: PK id (string)
//   - locks: PK hunt_id (string), one row per hunt with a live contract
//
// The lock row is written in the same transaction as the contract, so two
// concurrent creates for one hunt cannot both succeed.

type HuntContractDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	locksTable string
	huntsTable string
}

var _ interfaces.IHuntContractRepository = (*HuntContractDynamoRepository)(nil)

func NewHuntContractDynamoRepository(ddb *dynamodb.Client) *HuntContractDynamoRepository {
	return &HuntContractDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
		locksTable: getenvDefault("CONTRACT_HUNT_LOCKS_TABLE", defaultHuntLocksTableName),
		huntsTable: huntsTableName(),
	}
}

func (r *HuntContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.HuntContract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HuntContract{}, err
	}
	if len(out.Item) == 0 {
		return entities.HuntContract{}, nil
	}

	var row contractRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.HuntContract{}, err
	}
	return fromContractRow(row), nil
}

func (r *HuntContractDynamoRepository) GetActiveByHuntID(ctx context.Context, huntID string) (entities.HuntContract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locksTable),
		Key: map[string]types.AttributeValue{
			"hunt_id": str(huntID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HuntContract{}, err
	}
	if len(out.Item) == 0 {
		return entities.HuntContract{}, nil
	}

	var lock huntLockRow
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return entities.HuntContract{}, err
	}
	return r.GetByID(ctx, lock.ContractID)
}

func (r *HuntContractDynamoRepository) CreateForHunt(ctx context.Context, c entities.HuntContract) (entities.HuntContract, bool, error) {
	c.Version = 1
	contractAV, err := attributevalue.MarshalMap(toContractRow(c))
	if err != nil {
		return entities.HuntContract{}, false, err
	}
	lockAV, err := attributevalue.MarshalMap(huntLockRow{HuntID: c.HuntID, ContractID: c.ID})
	if err != nil {
		return entities.HuntContract{}, false, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.locksTable),
				Item:                     lockAV,
				ConditionExpression:      aws.String("attribute_not_exists(#hunt_id)"),
				ExpressionAttributeNames: map[string]string{"#hunt_id": "hunt_id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     contractAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err == nil {
		return c, true, nil
	}

	idx, ok := cancelledAt(err)
	if !ok {
		return entities.HuntContract{}, false, err
	}
	if idx != 0 {
		return entities.HuntContract{}, false, conflict("contract", c.ID)
	}

	existing, gerr := r.GetActiveByHuntID(ctx, c.HuntID)
	if gerr != nil {
		return entities.HuntContract{}, false, gerr
	}
	if existing.ID == "" {
		// The holder was cancelled between our write and this read.
		return entities.HuntContract{}, false, conflict("hunt lock", c.HuntID)
	}
	log.Printf("[contract][dynamodb] hunt already locked hunt_id=%s contract_id=%s", c.HuntID, existing.ID)
	return existing, false, nil
}

func (r *HuntContractDynamoRepository) Update(ctx context.Context, c entities.HuntContract) (entities.HuntContract, error) {
	expected := c.Version
	c.Version++
	av, err := attributevalue.MarshalMap(toContractRow(c))
	if err != nil {
		return entities.HuntContract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(contractCASCondition),
		ExpressionAttributeNames:  contractCASNames(),
		ExpressionAttributeValues: contractCASValues(expected),
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.HuntContract{}, conflict("contract", c.ID)
		}
		return entities.HuntContract{}, err
	}
	return c, nil
}

// UpdateWithBooking stores the contract (compare-and-set on Version) and the
// hunt's booking fields in one transaction.
func (r *HuntContractDynamoRepository) UpdateWithBooking(ctx context.Context, c entities.HuntContract, h entities.Hunt) (entities.HuntContract, error) {
	expected := c.Version
	c.Version++
	av, err := attributevalue.MarshalMap(toContractRow(c))
	if err != nil {
		return entities.HuntContract{}, err
	}
	booking, err := bookingUpdate(r.huntsTable, h)
	if err != nil {
		return entities.HuntContract{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                 aws.String(r.tableName),
				Item:                      av,
				ConditionExpression:       aws.String(contractCASCondition),
				ExpressionAttributeNames:  contractCASNames(),
				ExpressionAttributeValues: contractCASValues(expected),
			}},
			{Update: booking},
		},
	})
	if err != nil {
		if idx, ok := cancelledAt(err); ok {
			if idx == 1 {
				return entities.HuntContract{}, fmt.Errorf("hunt %s not found", h.ID)
			}
			return entities.HuntContract{}, conflict("contract", c.ID)
		}
		return entities.HuntContract{}, err
	}
	return c, nil
}

func (r *HuntContractDynamoRepository) CancelWithItems(ctx context.Context, c entities.HuntContract, items []entities.PaymentItem) (entities.HuntContract, error) {
	if len(items)+2 > maxTransactItems {
		return entities.HuntContract{}, conflict("contract", c.ID)
	}
	expected := c.Version
	c.Version++
	av, err := attributevalue.MarshalMap(toContractRow(c))
	if err != nil {
		return entities.HuntContract{}, err
	}

	tx := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                 aws.String(r.tableName),
			Item:                      av,
			ConditionExpression:       aws.String(contractCASCondition),
			ExpressionAttributeNames:  contractCASNames(),
			ExpressionAttributeValues: contractCASValues(expected),
		}},
	}
	if c.HuntID != "" {
		tx = append(tx, types.TransactWriteItem{Delete: &types.Delete{
			TableName:           aws.String(r.locksTable),
			Key:                 map[string]types.AttributeValue{"hunt_id": str(c.HuntID)},
			ConditionExpression: aws.String("attribute_not_exists(#hunt_id) OR #contract_id = :cid"),
			ExpressionAttributeNames: map[string]string{
				"#hunt_id":     "hunt_id",
				"#contract_id": "contract_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{":cid": str(c.ID)},
		}})
	}
	now := formatTime(c.UpdatedAt)
	for _, it := range items {
		tx = append(tx, cancelItemAction(paymentItemsTableName(), it.ID, now, false))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx}); err != nil {
		if isConditionFailed(err) {
			return entities.HuntContract{}, conflict("contract", c.ID)
		}
		return entities.HuntContract{}, err
	}
	log.Printf("[contract][dynamodb] cancelled contract_id=%s items=%d", c.ID, len(items))
	return c, nil
}

const contractCASCondition = "#version = :expected AND #status <> :cancelled"

func contractCASNames() map[string]string {
	return map[string]string{"#version": "version", "#status": "status"}
}

func contractCASValues(expected int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":expected":  num(expected),
		":cancelled": str(string(entities.ContractStatusCancelled)),
	}
}

// bumpContractAction is the transaction action every billing write carries so
// it conflicts with a concurrent contract write.
func bumpContractAction(table string, c entities.HuntContract, now string) types.TransactWriteItem {
	values := contractCASValues(c.Version)
	values[":next"] = num(c.Version + 1)
	values[":now"] = str(now)
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(table),
		Key:                       map[string]types.AttributeValue{"id": str(c.ID)},
		UpdateExpression:          aws.String("SET #version = :next, #updated_at = :now"),
		ConditionExpression:       aws.String(contractCASCondition),
		ExpressionAttributeNames:  mergeNames(contractCASNames(), map[string]string{"#updated_at": "updated_at"}),
		ExpressionAttributeValues: values,
	}}
}

func toContractRow(c entities.HuntContract) contractRow {
	row := contractRow{
		ID:             c.ID,
		OutfitterID:    c.OutfitterID,
		HuntID:         c.HuntID,
		ClientEmail:    c.ClientEmail,
		TemplateID:     c.TemplateID,
		Status:         string(c.Status),
		SignatureRef:   c.SignatureRef,
		ReviewNote:     c.ReviewNote,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
		ClientSignedAt: formatTimePtr(c.ClientSignedAt),
		AdminSignedAt:  formatTimePtr(c.AdminSignedAt),
		CancelledAt:    formatTimePtr(c.CancelledAt),
		Version:        c.Version,
	}
	if cd := c.ClientCompletionData; cd != nil {
		row.Completion = &completionRow{
			PricingItemID:   cd.PricingItemID,
			AddonSelections: addonsToRow(cd.AddonSelections),
			StartDate:       formatTime(cd.StartDate),
			EndDate:         formatTime(cd.EndDate),
			Notes:           cd.Notes,
			CapturedAt:      formatTime(cd.CapturedAt),
		}
	}
	return row
}

func fromContractRow(row contractRow) entities.HuntContract {
	c := entities.HuntContract{
		ID:             row.ID,
		OutfitterID:    row.OutfitterID,
		HuntID:         row.HuntID,
		ClientEmail:    row.ClientEmail,
		TemplateID:     row.TemplateID,
		Status:         entities.ContractStatus(row.Status),
		SignatureRef:   row.SignatureRef,
		ReviewNote:     row.ReviewNote,
		CreatedAt:      parseTime(row.CreatedAt),
		UpdatedAt:      parseTime(row.UpdatedAt),
		ClientSignedAt: parseTimePtr(row.ClientSignedAt),
		AdminSignedAt:  parseTimePtr(row.AdminSignedAt),
		CancelledAt:    parseTimePtr(row.CancelledAt),
		Version:        row.Version,
	}
	if cd := row.Completion; cd != nil {
		c.ClientCompletionData = &entities.CompletionData{
			PricingItemID:   cd.PricingItemID,
			AddonSelections: addonsFromRow(cd.AddonSelections),
			StartDate:       parseTime(cd.StartDate),
			EndDate:         parseTime(cd.EndDate),
			Notes:           cd.Notes,
			CapturedAt:      parseTime(cd.CapturedAt),
		}
	}
	return c
}
