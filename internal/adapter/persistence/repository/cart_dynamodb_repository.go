package repository

import (
	"context"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultCartsTableName = "carts"

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
}

type addressItem struct {
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
}

type paymentSessionItem struct {
	ProviderID string         `dynamodbav:"provider_id"`
	Data       map[string]any `dynamodbav:"data"`
	Status     string         `dynamodbav:"status"`
}

type paymentItem struct {
	ID           string         `dynamodbav:"id"`
	CartID       string         `dynamodbav:"cart_id"`
	ProviderID   string         `dynamodbav:"provider_id"`
	Amount       int64          `dynamodbav:"amount"`
	CurrencyCode string         `dynamodbav:"currency_code"`
	Data         map[string]any `dynamodbav:"data"`
	CapturedAt   string         `dynamodbav:"captured_at,omitempty"`
	CanceledAt   string         `dynamodbav:"canceled_at,omitempty"`
}

type cartItem struct {
	ID                  string              `dynamodbav:"id"`
	RegionID            string              `dynamodbav:"region_id"`
	Email               string              `dynamodbav:"email"`
	Items               []lineItemItem      `dynamodbav:"items"`
	BillingAddress      *addressItem        `dynamodbav:"billing_address,omitempty"`
	PaymentSession      *paymentSessionItem `dynamodbav:"payment_session,omitempty"`
	Payment             *paymentItem        `dynamodbav:"payment,omitempty"`
	PaymentAuthorizedAt string              `dynamodbav:"payment_authorized_at,omitempty"`
	CompletedAt         string              `dynamodbav:"completed_at,omitempty"`
	UpdatedAt           string              `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists carts, with their payment session and payment
// embedded, in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CartDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb DynamoAPI) *CartDynamoRepository {
	return &CartDynamoRepository{table: dynamoTable{
		ddb:   ddb,
		name:  getenvDefault("CARTS_TABLE", defaultCartsTableName),
		pkey:  "id",
		label: "carts",
	}}
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	av, err := r.table.get(ctx, id)
	if err != nil || av == nil {
		return entities.Cart{}, err
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	av, err := attributevalue.MarshalMap(toCartItem(c))
	if err != nil {
		return entities.Cart{}, err
	}
	if err := r.table.put(ctx, c.ID, av, false, nil); err != nil {
		return entities.Cart{}, err
	}
	return c, nil
}

func toCartItem(c entities.Cart) cartItem {
	it := cartItem{
		ID:                  c.ID,
		RegionID:            c.RegionID,
		Email:               c.Email,
		Items:               make([]lineItemItem, 0, len(c.Items)),
		PaymentAuthorizedAt: formatTime(c.PaymentAuthorizedAt),
		CompletedAt:         formatTime(c.CompletedAt),
		UpdatedAt:           time.Now().UTC().Format(time.RFC3339Nano),
	}
	for _, li := range c.Items {
		it.Items = append(it.Items, lineItemItem(li))
	}
	if c.BillingAddress != nil {
		a := addressItem(*c.BillingAddress)
		it.BillingAddress = &a
	}
	if s := c.PaymentSession; s != nil {
		it.PaymentSession = &paymentSessionItem{ProviderID: s.ProviderID, Data: s.Data, Status: string(s.Status)}
	}
	it.Payment = toPaymentItem(c.Payment)
	return it
}

func fromCartItem(it cartItem) entities.Cart {
	c := entities.Cart{
		ID:                  it.ID,
		RegionID:            it.RegionID,
		Email:               it.Email,
		Items:               make([]entities.LineItem, 0, len(it.Items)),
		PaymentAuthorizedAt: parseTime(it.PaymentAuthorizedAt),
		CompletedAt:         parseTime(it.CompletedAt),
	}
	for _, li := range it.Items {
		c.Items = append(c.Items, entities.LineItem(li))
	}
	if it.BillingAddress != nil {
		a := entities.Address(*it.BillingAddress)
		c.BillingAddress = &a
	}
	if s := it.PaymentSession; s != nil {
		c.PaymentSession = &entities.PaymentSession{ProviderID: s.ProviderID, Data: s.Data, Status: entities.PaymentSessionStatus(s.Status)}
	}
	c.Payment = fromPaymentItem(it.Payment)
	return c
}

func toPaymentItem(p *entities.Payment) *paymentItem {
	if p == nil {
		return nil
	}
	return &paymentItem{
		ID:           p.ID,
		CartID:       p.CartID,
		ProviderID:   p.ProviderID,
		Amount:       p.Amount,
		CurrencyCode: p.CurrencyCode,
		Data:         p.Data,
		CapturedAt:   formatTime(p.CapturedAt),
		CanceledAt:   formatTime(p.CanceledAt),
	}
}

func fromPaymentItem(it *paymentItem) *entities.Payment {
	if it == nil {
		return nil
	}
	return &entities.Payment{
		ID:           it.ID,
		CartID:       it.CartID,
		ProviderID:   it.ProviderID,
		Amount:       it.Amount,
		CurrencyCode: it.CurrencyCode,
		Data:         it.Data,
		CapturedAt:   parseTime(it.CapturedAt),
		CanceledAt:   parseTime(it.CanceledAt),
	}
}
