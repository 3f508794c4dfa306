package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/okunev/musicbox/internal/common"
)

// DynamoAPI is the subset of the DynamoDB client used by this repository.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// indexByPlan maps each index plan to its secondary index name and the
// attribute serving as the index partition key.
var indexByPlan = map[PlanKind]struct {
	name string
	key  string
}{
	PlanArtistIndex: {name: "artist-title-index", key: "artist"},
	PlanAlbumIndex:  {name: "album-title-index", key: "album"},
	PlanYearIndex:   {name: "year-title-index", key: "year"},
	PlanTitleIndex:  {name: "title-year-index", key: "title"},
}

type DynamoRepository struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepository(client DynamoAPI, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

func (r *DynamoRepository) Get(ctx context.Context, title, year string) (*Item, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"title": title, "year": year})
	if err != nil {
		return nil, fmt.Errorf("error marshalling key: %w", err)
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("error performing dynamodb request: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, common.ErrorNotFound
	}

	item := &Item{}
	if err := attributevalue.UnmarshalMap(out.Item, item); err != nil {
		return nil, fmt.Errorf("error unmarshalling item: %w", err)
	}
	return item, nil
}

func (r *DynamoRepository) QueryIndex(ctx context.Context, plan Plan) ([]Item, error) {
	index, ok := indexByPlan[plan.Kind]
	if !ok {
		return nil, fmt.Errorf("no index for plan %s", plan.Kind)
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(index.key).Equal(expression.Value(plan.Value))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error building expression: %w", err)
	}

	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(index.name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("error performing dynamodb request: %w", err)
	}

	var items []Item
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("error unmarshalling items: %w", err)
	}
	return items, nil
}

func (r *DynamoRepository) ScanFilter(ctx context.Context, f Filter) ([]Item, error) {
	var cond expression.ConditionBuilder
	combined := false
	add := func(c expression.ConditionBuilder) {
		if combined {
			cond = cond.And(c)
			return
		}
		cond = c
		combined = true
	}

	if f.Title != "" {
		add(expression.Name("title").Contains(f.Title))
	}
	if f.Year != "" {
		add(expression.Name("year").Equal(expression.Value(f.Year)))
	}
	if f.Artist != "" {
		add(expression.Name("artist").Contains(f.Artist))
	}
	if f.Album != "" {
		add(expression.Name("album").Contains(f.Album))
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	if combined {
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, fmt.Errorf("error building expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error performing dynamodb request: %w", err)
	}

	var items []Item
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("error unmarshalling items: %w", err)
	}
	return items, nil
}
