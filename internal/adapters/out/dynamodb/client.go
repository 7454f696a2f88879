// Package dynamodb implements ports.OrderStore on a single DynamoDB table.
//
// Item layout (pk / sk):
//
//	USER#<userKey>  CURRENT          current order of the user
//	USER#<userKey>  HISTORY#<number> the user's archived orders
//	HISTORY         ORDER#<number>   every archived order
//
// History items are written with attribute_not_exists(pk), so archiving the
// same order twice keeps the first copy.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTableName = "storefront_orders"

// ClientConfig selects the DynamoDB endpoint. Endpoint is empty for AWS and
// set for DynamoDB Local, which accepts any static credentials.
type ClientConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

func NewClient(ctx context.Context, cfg ClientConfig) (*dynamodb.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// EnsureTable creates the orders table when it does not exist and waits
// until it is active.
func EnsureTable(ctx context.Context, client *dynamodb.Client, tableName string, logger *slog.Logger) error {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("describe table %s: %w", tableName, err)
	}

	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrPK), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrSK), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrPK), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(attrSK), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", tableName, err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}, tableWaitTimeout); err != nil {
		return fmt.Errorf("wait for table %s: %w", tableName, err)
	}

	logger.InfoContext(ctx, "DynamoDB table created", "component", "dynamodb", "table", tableName)
	return nil
}
