package repository

import (
	"context"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	CartID       string       `dynamodbav:"cart_id"`
	ID           string       `dynamodbav:"id"`
	Email        string       `dynamodbav:"email"`
	RegionID     string       `dynamodbav:"region_id"`
	CurrencyCode string       `dynamodbav:"currency_code"`
	Total        int64        `dynamodbav:"total"`
	Payment      *paymentItem `dynamodbav:"payment,omitempty"`
	CreatedAt    string       `dynamodbav:"created_at"`
	UpdatedAt    string       `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: cart_id (string)
//
// The cart id is the partition key so a cart can never hold two orders; Create
// fails with ErrOrderAlreadyExists when one is already stored.
type OrderDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{table: dynamoTable{
		ddb:   ddb,
		name:  getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		pkey:  "cart_id",
		label: "orders",
	}}
}

func (r *OrderDynamoRepository) GetByCartID(ctx context.Context, cartID string) (entities.Order, error) {
	av, err := r.table.get(ctx, cartID)
	if err != nil || av == nil {
		return entities.Order{}, err
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	return r.put(ctx, o, true)
}

func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	return r.put(ctx, o, false)
}

func (r *OrderDynamoRepository) put(ctx context.Context, o entities.Order, create bool) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	if err := r.table.put(ctx, o.CartID, av, create, interfaces.ErrOrderAlreadyExists); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		CartID:       o.CartID,
		ID:           o.ID,
		Email:        o.Email,
		RegionID:     o.RegionID,
		CurrencyCode: o.CurrencyCode,
		Total:        o.Total,
		Payment:      toPaymentItem(o.Payment),
		CreatedAt:    formatTime(&o.CreatedAt),
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:           it.ID,
		CartID:       it.CartID,
		Email:        it.Email,
		RegionID:     it.RegionID,
		CurrencyCode: it.CurrencyCode,
		Total:        it.Total,
		Payment:      fromPaymentItem(it.Payment),
	}
	if t := parseTime(it.CreatedAt); t != nil {
		o.CreatedAt = *t
	}
	return o
}
