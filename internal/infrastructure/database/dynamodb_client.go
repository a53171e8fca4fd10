package database

import (
	"context"

	"print3d_quote/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the client backing the quote snapshot cache.
//
// Settings come from config.DynamoDBConfig:
//   - Region (AWS_REGION, default us-east-1)
//   - AccessKeyID / SecretAccessKey (default "local")
//   - Endpoint (DYNAMODB_ENDPOINT, optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, settings config.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, settings)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, settings config.DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
