package repository

import (
	"context"
	"encoding/json"
	"time"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultQuoteCacheTableName = "quote_snapshots"

// DynamoAPI is the subset of *dynamodb.Client the cache uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type quoteSnapshotItem struct {
	ID            string `dynamodbav:"id"`
	CustomerEmail string `dynamodbav:"customer_email"`
	Status        string `dynamodbav:"status"`
	Snapshot      string `dynamodbav:"snapshot"`
	CachedAt      string `dynamodbav:"cached_at"`
	ExpiresAt     int64  `dynamodbav:"expires_at"`
}

// QuoteCacheDynamoRepository keeps formatted quote snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the remote draft order id
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB expires items lazily, so Get also checks expires_at itself.
type QuoteCacheDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IQuoteCache = (*QuoteCacheDynamoRepository)(nil)

func NewQuoteCacheDynamoRepository(ddb DynamoAPI, tableName string, ttl time.Duration) *QuoteCacheDynamoRepository {
	if tableName == "" {
		tableName = defaultQuoteCacheTableName
	}
	return &QuoteCacheDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteCacheDynamoRepository) Get(ctx context.Context, id string) (*entities.RawDraftOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it quoteSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.ExpiresAt > 0 && it.ExpiresAt <= r.now().Unix() {
		return nil, nil
	}

	var raw entities.RawDraftOrder
	if err := json.Unmarshal([]byte(it.Snapshot), &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func (r *QuoteCacheDynamoRepository) Put(ctx context.Context, q entities.Quote) error {
	raw, err := entities.EncodeQuote(q)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	now := r.now()
	av, err := attributevalue.MarshalMap(quoteSnapshotItem{
		ID:            q.ID,
		CustomerEmail: q.CustomerEmail,
		Status:        string(q.Status),
		Snapshot:      string(snapshot),
		CachedAt:      now.Format(time.RFC3339Nano),
		ExpiresAt:     now.Add(r.ttl).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *QuoteCacheDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	return err
}
