package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentItemsTableName = "payment_items"
	paymentItemsContractIndex    = "contract_id-index"
)

type paymentItemRow struct {
	ID                 string `dynamodbav:"id"`
	OutfitterID        string `dynamodbav:"outfitter_id"`
	ContractID         string `dynamodbav:"contract_id"`
	ClientEmail        string `dynamodbav:"client_email"`
	ItemType           string `dynamodbav:"item_type"`
	PlanID             string `dynamodbav:"plan_id,omitempty"`
	InstallmentNumber  int    `dynamodbav:"installment_number,omitempty"`
	InstallmentCount   int    `dynamodbav:"installment_count,omitempty"`
	SubtotalCents      int64  `dynamodbav:"subtotal_cents"`
	PlatformFeeCents   int64  `dynamodbav:"platform_fee_cents"`
	TotalCents         int64  `dynamodbav:"total_cents"`
	AmountPaidCents    int64  `dynamodbav:"amount_paid_cents"`
	DueDate            string `dynamodbav:"due_date,omitempty"`
	Status             string `dynamodbav:"status"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
}

// PaymentItemDynamoRepository persists PaymentItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// ListByContractID reads the GSI, which is eventually consistent. Writes never
// rely on it: every arrangement change is conditioned on the contract version.

type PaymentItemDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	contractsTable string
}

var _ interfaces.IPaymentItemRepository = (*PaymentItemDynamoRepository)(nil)

func paymentItemsTableName() string {
	return getenvDefault("PAYMENT_ITEMS_TABLE", defaultPaymentItemsTableName)
}

func NewPaymentItemDynamoRepository(ddb *dynamodb.Client) *PaymentItemDynamoRepository {
	return &PaymentItemDynamoRepository{
		ddb:            ddb,
		tableName:      paymentItemsTableName(),
		contractsTable: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *PaymentItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentItem{}, nil
	}

	var row paymentItemRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return entities.PaymentItem{}, err
	}
	return fromPaymentItemRow(row), nil
}

func (r *PaymentItemDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.PaymentItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentItemsContractIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": str(contractID),
		},
	})

	items := make([]entities.PaymentItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var row paymentItemRow
			if err := attributevalue.UnmarshalMap(raw, &row); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentItemRow(row))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].InstallmentNumber != items[j].InstallmentNumber {
			return items[i].InstallmentNumber < items[j].InstallmentNumber
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *PaymentItemDynamoRepository) CreateFull(ctx context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error) {
	put, err := r.putNewAction(item)
	if err != nil {
		return entities.PaymentItem{}, err
	}
	tx := []types.TransactWriteItem{put, bumpContractAction(r.contractsTable, c, formatTime(item.UpdatedAt))}
	if err := r.transact(ctx, tx, "payment item", item.ID); err != nil {
		return entities.PaymentItem{}, err
	}
	log.Printf("[bill][dynamodb] created full item item_id=%s contract_id=%s total_cents=%d", item.ID, c.ID, item.TotalCents)
	return item, nil
}

func (r *PaymentItemDynamoRepository) Reprice(ctx context.Context, c entities.HuntContract, item entities.PaymentItem) (entities.PaymentItem, error) {
	now := formatTime(item.UpdatedAt)
	update := types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": str(item.ID)},
		UpdateExpression:    aws.String("SET #subtotal = :subtotal, #fee = :fee, #total = :total, #updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending AND #paid = :zero"),
		ExpressionAttributeNames: map[string]string{
			"#subtotal":   "subtotal_cents",
			"#fee":        "platform_fee_cents",
			"#total":      "total_cents",
			"#updated_at": "updated_at",
			"#status":     "status",
			"#paid":       "amount_paid_cents",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":subtotal": num(item.SubtotalCents),
			":fee":      num(item.PlatformFeeCents),
			":total":    num(item.TotalCents),
			":now":      str(now),
			":pending":  str(string(entities.PaymentStatusPending)),
			":zero":     num(0),
		},
	}}
	tx := []types.TransactWriteItem{update, bumpContractAction(r.contractsTable, c, now)}
	if err := r.transact(ctx, tx, "payment item", item.ID); err != nil {
		return entities.PaymentItem{}, err
	}
	return item, nil
}

func (r *PaymentItemDynamoRepository) ReplaceWithInstallments(ctx context.Context, c entities.HuntContract, cancel []entities.PaymentItem, installments []entities.PaymentItem) ([]entities.PaymentItem, error) {
	if len(cancel)+len(installments)+1 > maxTransactItems {
		return nil, conflict("contract", c.ID)
	}
	now := formatTime(time.Now().UTC())

	tx := make([]types.TransactWriteItem, 0, len(cancel)+len(installments)+1)
	for _, it := range cancel {
		tx = append(tx, cancelItemAction(r.tableName, it.ID, now, true))
	}
	for _, it := range installments {
		put, err := r.putNewAction(it)
		if err != nil {
			return nil, err
		}
		tx = append(tx, put)
	}
	tx = append(tx, bumpContractAction(r.contractsTable, c, now))

	if err := r.transact(ctx, tx, "contract", c.ID); err != nil {
		return nil, err
	}
	log.Printf("[bill][dynamodb] installments created contract_id=%s count=%d", c.ID, len(installments))
	return installments, nil
}

func (r *PaymentItemDynamoRepository) MarkPaid(ctx context.Context, item entities.PaymentItem) (entities.PaymentItem, error) {
	av, err := attributevalue.MarshalMap(toPaymentItemRow(item))
	if err != nil {
		return entities.PaymentItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":pending": str(string(entities.PaymentStatusPending))},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PaymentItem{}, conflict("payment item", item.ID)
		}
		return entities.PaymentItem{}, err
	}
	return item, nil
}

func (r *PaymentItemDynamoRepository) putNewAction(item entities.PaymentItem) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toPaymentItemRow(item))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}}, nil
}

func (r *PaymentItemDynamoRepository) transact(ctx context.Context, tx []types.TransactWriteItem, kind, id string) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		if isConditionFailed(err) {
			return conflict(kind, id)
		}
		return err
	}
	return nil
}

// cancelItemAction cancels a pending item. unpaid additionally requires that
// nothing was collected against it.
func cancelItemAction(table, id, now string, unpaid bool) types.TransactWriteItem {
	cond := "#status = :pending"
	names := map[string]string{"#status": "status", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":pending":   str(string(entities.PaymentStatusPending)),
		":cancelled": str(string(entities.PaymentStatusCancelled)),
		":now":       str(now),
	}
	if unpaid {
		cond += " AND #paid = :zero"
		names["#paid"] = "amount_paid_cents"
		values[":zero"] = num(0)
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(table),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		UpdateExpression:          aws.String("SET #status = :cancelled, #updated_at = :now"),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
}

func toPaymentItemRow(p entities.PaymentItem) paymentItemRow {
	return paymentItemRow{
		ID:                 p.ID,
		OutfitterID:        p.OutfitterID,
		ContractID:         p.ContractID,
		ClientEmail:        p.ClientEmail,
		ItemType:           string(p.ItemType),
		PlanID:             p.PlanID,
		InstallmentNumber:  p.InstallmentNumber,
		InstallmentCount:   p.InstallmentCount,
		SubtotalCents:      p.SubtotalCents,
		PlatformFeeCents:   p.PlatformFeeCents,
		TotalCents:         p.TotalCents,
		AmountPaidCents:    p.AmountPaidCents,
		DueDate:            formatTimePtr(p.DueDate),
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayload),
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
		PaidAt:             formatTimePtr(p.PaidAt),
	}
}

func fromPaymentItemRow(row paymentItemRow) entities.PaymentItem {
	p := entities.PaymentItem{
		ID:                row.ID,
		OutfitterID:       row.OutfitterID,
		ContractID:        row.ContractID,
		ClientEmail:       row.ClientEmail,
		ItemType:          entities.PaymentItemType(row.ItemType),
		PlanID:            row.PlanID,
		InstallmentNumber: row.InstallmentNumber,
		InstallmentCount:  row.InstallmentCount,
		SubtotalCents:     row.SubtotalCents,
		PlatformFeeCents:  row.PlatformFeeCents,
		TotalCents:        row.TotalCents,
		AmountPaidCents:   row.AmountPaidCents,
		DueDate:           parseTimePtr(row.DueDate),
		Status:            entities.PaymentStatus(row.Status),
		ProviderPaymentID: row.ProviderPaymentID,
		CreatedAt:         parseTime(row.CreatedAt),
		UpdatedAt:         parseTime(row.UpdatedAt),
		PaidAt:            parseTimePtr(row.PaidAt),
	}
	if row.ProviderPayloadRaw != "" {
		p.ProviderPayload = []byte(row.ProviderPayloadRaw)
	}
	return p
}
