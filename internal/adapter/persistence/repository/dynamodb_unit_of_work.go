package repository

import (
	"context"
	"errors"
	"sync"

	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoTransactionManager buffers the puts made inside WithinTransaction and
// commits them with a single TransactWriteItems call.
//
// Reads inside the transaction see the buffered items first. Several puts of
// the same item collapse into the last one, keeping the first condition, since
// a transaction may touch each item only once.
type DynamoTransactionManager struct {
	ddb DynamoAPI
}

var _ interfaces.ITransactionManager = (*DynamoTransactionManager)(nil)

func NewDynamoTransactionManager(ddb DynamoAPI) *DynamoTransactionManager {
	return &DynamoTransactionManager{ddb: ddb}
}

type uowKey struct{}

type pendingPut struct {
	table     string
	key       string
	item      map[string]types.AttributeValue
	condition *string
	names     map[string]string
	conflict  error
}

type dynamoUnitOfWork struct {
	mu   sync.Mutex
	puts []*pendingPut
}

func (m *DynamoTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if uowFrom(ctx) != nil {
		return fn(ctx)
	}

	uow := &dynamoUnitOfWork{}
	if err := fn(context.WithValue(ctx, uowKey{}, uow)); err != nil {
		return err
	}
	return m.commit(ctx, uow)
}

func (m *DynamoTransactionManager) commit(ctx context.Context, uow *dynamoUnitOfWork) error {
	uow.mu.Lock()
	puts := append([]*pendingPut(nil), uow.puts...)
	uow.mu.Unlock()
	if len(puts) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(puts))
	for _, p := range puts {
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(p.table),
			Item:                     p.item,
			ConditionExpression:      p.condition,
			ExpressionAttributeNames: p.names,
		}})
	}

	_, err := m.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		logger.FromCtx(ctx).Debug("[dynamodb][tx] committed", zap.Int("items", len(items)))
		return nil
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if i < len(puts) && aws.ToString(reason.Code) == "ConditionalCheckFailed" && puts[i].conflict != nil {
				return puts[i].conflict
			}
		}
	}
	logger.FromCtx(ctx).Error("[dynamodb][tx] commit failed", zap.Error(err))
	return err
}

func uowFrom(ctx context.Context) *dynamoUnitOfWork {
	uow, _ := ctx.Value(uowKey{}).(*dynamoUnitOfWork)
	return uow
}

func (u *dynamoUnitOfWork) add(p *pendingPut) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, existing := range u.puts {
		if existing.table == p.table && existing.key == p.key {
			if p.condition == nil {
				p.condition, p.names, p.conflict = existing.condition, existing.names, existing.conflict
			}
			u.puts[i] = p
			return
		}
	}
	u.puts = append(u.puts, p)
}

func (u *dynamoUnitOfWork) get(table, key string) (map[string]types.AttributeValue, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.puts {
		if p.table == table && p.key == key {
			return p.item, true
		}
	}
	return nil, false
}

// dynamoTable holds what the repositories share: the client, the table and the
// name of its string partition key.
type dynamoTable struct {
	ddb   DynamoAPI
	name  string
	pkey  string
	label string
}

// get returns the item stored under key, or nil when there is none.
func (t dynamoTable) get(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	if uow := uowFrom(ctx); uow != nil {
		if item, ok := uow.get(t.name, key); ok {
			return item, nil
		}
	}

	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key: map[string]types.AttributeValue{
			t.pkey: &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logger.FromCtx(ctx).Error("[dynamodb] get item failed", zap.String("table", t.label), zap.String("key", key), zap.Error(err))
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// put writes item, joining the transaction carried by ctx if any. When
// mustNotExist is set an existing item fails the write with conflict.
func (t dynamoTable) put(ctx context.Context, key string, item map[string]types.AttributeValue, mustNotExist bool, conflict error) error {
	p := &pendingPut{table: t.name, key: key, item: item}
	if mustNotExist {
		p.condition = aws.String("attribute_not_exists(#pk)")
		p.names = map[string]string{"#pk": t.pkey}
		p.conflict = conflict
	}

	if uow := uowFrom(ctx); uow != nil {
		uow.add(p)
		return nil
	}

	_, err := t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     item,
		ConditionExpression:      p.condition,
		ExpressionAttributeNames: p.names,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) && conflict != nil {
			return conflict
		}
		logger.FromCtx(ctx).Error("[dynamodb] put item failed", zap.String("table", t.label), zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
