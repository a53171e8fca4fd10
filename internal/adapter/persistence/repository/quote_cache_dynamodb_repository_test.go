package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"print3d_quote/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(k map[string]types.AttributeValue) string {
	return k["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:            "gid://shopify/DraftOrder/1",
		DisplayName:   "#D1",
		CustomerEmail: "alice@x.com",
		Status:        entities.QuoteStatusQuoted,
		TotalPrice:    "120.50",
		Currency:      "CNY",
		LineItems: []entities.LineItem{{
			Title:     "part.stl",
			Quantity:  1,
			UnitPrice: "120.50",
			CustomAttributes: entities.Attributes{
				{Key: entities.AttrQuoteNumber, Value: "Q1"},
				{Key: entities.AttrStatus, Value: entities.StatusValueQuoted},
			},
		}},
	}
}

func TestQuoteCacheDynamoRepository_RoundTrip(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteCacheDynamoRepository(ddb, "", time.Minute)

	require.NoError(t, repo.Put(context.Background(), sampleQuote()))
	assert.Equal(t, defaultQuoteCacheTableName, repo.tableName)

	raw, err := repo.Get(context.Background(), "gid://shopify/DraftOrder/1")
	require.NoError(t, err)
	require.NotNil(t, raw)

	q, err := entities.FormatQuote(raw)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusQuoted, q.Status)
	assert.Equal(t, "Q1", q.QuoteNumber)
	assert.Equal(t, "alice@x.com", q.CustomerEmail)

	require.NoError(t, repo.Delete(context.Background(), "gid://shopify/DraftOrder/1"))
	raw, err = repo.Get(context.Background(), "gid://shopify/DraftOrder/1")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestQuoteCacheDynamoRepository_Expired(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewQuoteCacheDynamoRepository(ddb, "snapshots", time.Minute)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }

	require.NoError(t, repo.Put(context.Background(), sampleQuote()))

	repo.now = func() time.Time { return base.Add(2 * time.Minute) }
	raw, err := repo.Get(context.Background(), "gid://shopify/DraftOrder/1")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestQuoteCacheDynamoRepository_GetError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.getErr = errors.New("throttled")
	repo := NewQuoteCacheDynamoRepository(ddb, "snapshots", time.Minute)

	_, err := repo.Get(context.Background(), "x")
	assert.EqualError(t, err, "throttled")
}
