package repository

import (
	"context"

	"outfitter_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractTemplatesTableName = "contract_templates"

type templateRow struct {
	OutfitterID       string `dynamodbav:"outfitter_id"`
	DefaultTemplateID string `dynamodbav:"default_template_id"`
}

// ContractTemplateDynamoSource reads the outfitter's default template id.
//
// Table requirements:
//   - PK: outfitter_id (string)

type ContractTemplateDynamoSource struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractTemplateSource = (*ContractTemplateDynamoSource)(nil)

func NewContractTemplateDynamoSource(ddb *dynamodb.Client) *ContractTemplateDynamoSource {
	return &ContractTemplateDynamoSource{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACT_TEMPLATES_TABLE", defaultContractTemplatesTableName),
	}
}

func (s *ContractTemplateDynamoSource) DefaultTemplateID(ctx context.Context, outfitterID string) (string, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"outfitter_id": str(outfitterID),
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}
	var row templateRow
	if err := attributevalue.UnmarshalMap(out.Item, &row); err != nil {
		return "", err
	}
	return row.DefaultTemplateID, nil
}
