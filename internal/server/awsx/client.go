// Package awsx builds the AWS SDK clients used by the server: a DynamoDB
// client for the record tables and an S3 presign client for cover images.
package awsx

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/okunev/musicbox/internal/server/config"
)

// LoadAWSConfig resolves the SDK configuration for the configured region.
// When static credentials are present in the server config they take
// precedence; otherwise the default credential chain applies, e.g. the
// execution role when running on AWS.
func LoadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// NewDynamoClient builds a DynamoDB client, optionally pointed at a local
// endpoint (DynamoDB Local).
func NewDynamoClient(awsCfg aws.Config, baseEndpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if baseEndpoint != "" {
			o.BaseEndpoint = aws.String(baseEndpoint)
		}
	})
}

// NewS3PresignClient builds a presign client, optionally pointed at an
// S3-compatible local endpoint (MinIO).
func NewS3PresignClient(awsCfg aws.Config, baseEndpoint string) *s3.PresignClient {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if baseEndpoint != "" {
			o.BaseEndpoint = aws.String(baseEndpoint)
		}
	})
	return s3.NewPresignClient(client)
}
