package subscriptions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
type DynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) ListByUser(ctx context.Context, email string) ([]Subscription, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("user_email").Equal(expression.Value(email))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("error performing dynamodb request: %w", err)
	}

	var subscriptions []Subscription
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &subscriptions); err != nil {
		return nil, fmt.Errorf("error unmarshalling items: %w", err)
	}
	return subscriptions, nil
}

func (r *DynamoRepository) Put(ctx context.Context, subscription *Subscription) error {
	item, err := attributevalue.MarshalMap(subscription)
	if err != nil {
		return fmt.Errorf("error marshalling item: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("error performing dynamodb request: %w", err)
	}
	return nil
}

func (r *DynamoRepository) Delete(ctx context.Context, email, uuid string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"user_email": email, "uuid": uuid})
	if err != nil {
		return fmt.Errorf("error marshalling key: %w", err)
	}

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	}); err != nil {
		return fmt.Errorf("error performing dynamodb request: %w", err)
	}
	return nil
}
