package sessions

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/musicbox/internal/common"
)

type stubDynamo struct {
	getIn  *dynamodb.GetItemInput
	getOut *dynamodb.GetItemOutput
	putIn  *dynamodb.PutItemInput
	getErr error
	putErr error
}

func (s *stubDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.getIn = params
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getOut, nil
}

func (s *stubDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putIn = params
	if s.putErr != nil {
		return nil, s.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoRepository_Get_NotFound(t *testing.T) {
	stub := &stubDynamo{getOut: &dynamodb.GetItemOutput{}}
	repo := NewDynamoRepository(stub, "sessions")

	_, err := repo.Get(context.Background(), "tok-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NotNil(t, stub.getIn)
	assert.Equal(t, "sessions", *stub.getIn.TableName)
	key, ok := stub.getIn.Key["session_token"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "tok-1", key.Value)
}

func TestDynamoRepository_Get_Found(t *testing.T) {
	stub := &stubDynamo{getOut: &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
		"session_token": &types.AttributeValueMemberS{Value: "tok-1"},
		"email":         &types.AttributeValueMemberS{Value: "user@example.com"},
		"created_at":    &types.AttributeValueMemberN{Value: "1700000000"},
		"ttl":           &types.AttributeValueMemberN{Value: "1700003600"},
	}}}
	repo := NewDynamoRepository(stub, "sessions")

	session, err := repo.Get(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, &Session{
		Token:     "tok-1",
		Email:     "user@example.com",
		CreatedAt: 1700000000,
		TTL:       1700003600,
	}, session)
}

func TestDynamoRepository_Create(t *testing.T) {
	stub := &stubDynamo{}
	repo := NewDynamoRepository(stub, "sessions")

	err := repo.Create(context.Background(), &Session{
		Token: "tok-1", Email: "user@example.com", CreatedAt: 1, TTL: 2,
	})
	require.NoError(t, err)

	require.NotNil(t, stub.putIn)
	assert.Equal(t, "sessions", *stub.putIn.TableName)
	token, ok := stub.putIn.Item["session_token"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token.Value)
}
