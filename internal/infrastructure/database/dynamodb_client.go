package database

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBOptions locates the DynamoDB endpoint. Empty credentials fall back
// to the SDK's default chain; Endpoint is set for DynamoDB Local.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB builds a DynamoDB client for the billing tables.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := LoadAWSConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	log.Printf("[dynamodb][client] connected region=%s endpoint=%q", cfg.Region, opts.Endpoint)
	return client, nil
}

func LoadAWSConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// DynamoDB Local ignores credentials but the SDK still signs requests.
	accessKey, secret := opts.AccessKeyID, opts.SecretAccessKey
	if opts.Endpoint != "" && accessKey == "" {
		accessKey, secret = "local", "local"
	}
	if accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
