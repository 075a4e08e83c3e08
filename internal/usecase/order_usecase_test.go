package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/usecase"
	"mercadopago_provider/internal/usecase/interfaces"
	mock_interfaces "mercadopago_provider/internal/usecase/interfaces/mocks"
	"mercadopago_provider/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	uc       *usecase.OrderUseCase
	orders   *mock_interfaces.MockIOrderRepository
	carts    *mock_interfaces.MockICartRepository
	regions  *mock_interfaces.MockIRegionRepository
	tx       *mock_interfaces.MockITransactionManager
	provider *mocks.MockIPaymentProvider
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := orderFixture{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		carts:    mock_interfaces.NewMockICartRepository(ctrl),
		regions:  mock_interfaces.NewMockIRegionRepository(ctrl),
		tx:       mock_interfaces.NewMockITransactionManager(ctrl),
		provider: mocks.NewMockIPaymentProvider(ctrl),
	}
	f.provider.EXPECT().Identifier().Return(usecase.MercadoPagoProviderID).AnyTimes()
	f.uc = usecase.NewOrderUseCase(f.orders, f.carts, f.regions, f.tx, f.provider)
	return f
}

func runInline(times int) func(*mock_interfaces.MockITransactionManager) {
	return func(tx *mock_interfaces.MockITransactionManager) {
		tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
		).Times(times)
	}
}

func authorizedCart() entities.Cart {
	now := time.Now()
	c := sampleCart()
	c.PaymentSession = &entities.PaymentSession{ProviderID: usecase.MercadoPagoProviderID, Status: entities.PaymentSessionStatusAuthorized, Data: entities.Data{"id": "pay_1"}}
	c.Payment = &entities.Payment{ID: "p_1", CartID: "cart_1", ProviderID: usecase.MercadoPagoProviderID, Amount: 10000, CurrencyCode: "usd", Data: entities.Data{"id": "pay_1"}}
	c.PaymentAuthorizedAt = &now
	return c
}

func orderWithPayment() entities.Order {
	return entities.Order{
		ID:           "order_1",
		CartID:       "cart_1",
		CurrencyCode: "usd",
		Total:        10000,
		Payment:      &entities.Payment{ID: "p_1", ProviderID: usecase.MercadoPagoProviderID, Amount: 10000, CurrencyCode: "usd", Data: entities.Data{"id": "pay_1"}},
	}
}

func TestOrderUseCase_RetrieveByCartID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{}, nil)

		if _, err := f.uc.RetrieveByCartID(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)

		o, err := f.uc.RetrieveByCartID(context.Background(), "cart_1")
		if err != nil || o.ID != "order_1" {
			t.Fatalf("unexpected result order=%+v err=%v", o, err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		f := newOrderFixture(t)
		if _, err := f.uc.RetrieveByCartID(context.Background(), ""); !errors.Is(err, usecase.ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateFromCart(t *testing.T) {
	t.Run("creates order and completes cart", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(authorizedCart(), nil)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{}, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.CartID != "cart_1" || o.Total != 10000 || o.CurrencyCode != "usd" || o.Email != "buyer@example.com" {
					t.Fatalf("unexpected order %+v", o)
				}
				if o.Payment == nil || o.Payment.ID != "p_1" {
					t.Fatalf("expected cart payment on order, got %+v", o.Payment)
				}
				return o, nil
			},
		)
		f.carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if c.CompletedAt == nil {
					t.Fatalf("expected cart completed")
				}
				return c, nil
			},
		)

		o, err := f.uc.CreateFromCart(context.Background(), "cart_1")
		if err != nil || o.CartID != "cart_1" {
			t.Fatalf("unexpected result order=%+v err=%v", o, err)
		}
	})

	t.Run("zero total needs no payment", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		cart := sampleCart()
		cart.Items = nil
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(cart, nil)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{}, nil)
		f.regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "brl"}, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		f.carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho())

		o, err := f.uc.CreateFromCart(context.Background(), "cart_1")
		if err != nil || o.CurrencyCode != "brl" || o.Payment != nil {
			t.Fatalf("unexpected result order=%+v err=%v", o, err)
		}
	})

	t.Run("unauthorized cart", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(sampleCart(), nil)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{}, nil)

		if _, err := f.uc.CreateFromCart(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrCartNotAuthorized) {
			t.Fatalf("expected ErrCartNotAuthorized, got %v", err)
		}
	})

	t.Run("existing order", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(authorizedCart(), nil)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.CreateFromCart(context.Background(), "cart_1")
		if !errors.Is(err, interfaces.ErrOrderAlreadyExists) || !usecase.IsOrderConflict(err) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("storage conflict", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(authorizedCart(), nil)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{}, nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrOrderAlreadyExists)
		f.carts.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		if _, err := f.uc.CreateFromCart(context.Background(), "cart_1"); !errors.Is(err, interfaces.ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("completed cart", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		cart := authorizedCart()
		cart.CompletedAt = cart.PaymentAuthorizedAt
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(cart, nil)

		if _, err := f.uc.CreateFromCart(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrCartAlreadyCompleted) {
			t.Fatalf("expected ErrCartAlreadyCompleted, got %v", err)
		}
	})

	t.Run("missing cart", func(t *testing.T) {
		f := newOrderFixture(t)
		runInline(1)(f.tx)
		f.carts.EXPECT().GetByID(gomock.Any(), "cart_1").Return(entities.Cart{}, nil)

		if _, err := f.uc.CreateFromCart(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_CapturePayment(t *testing.T) {
	t.Run("stores provider data", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
		f.provider.EXPECT().CapturePayment(gomock.Any(), gomock.Any()).Return(entities.Data{"id": "pay_1"}, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		o, err := f.uc.CapturePayment(context.Background(), "cart_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Payment.CapturedAt == nil {
			t.Fatalf("expected captured_at set")
		}
	})

	t.Run("order without payment", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(entities.Order{ID: "order_1", CartID: "cart_1"}, nil)

		if _, err := f.uc.CapturePayment(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrOrderWithoutPayment) {
			t.Fatalf("expected ErrOrderWithoutPayment, got %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newOrderFixture(t)
		o := orderWithPayment()
		o.Payment.ProviderID = "manual"
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(o, nil)

		if _, err := f.uc.CapturePayment(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrUnknownPaymentProvider) {
			t.Fatalf("expected ErrUnknownPaymentProvider, got %v", err)
		}
	})
}

func TestOrderUseCase_RefundPayment(t *testing.T) {
	t.Run("refunds and merges data", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
		f.provider.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), int64(2500)).Return(entities.Data{"status": "approved", "transaction_amount_refunded": 25.0}, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		o, err := f.uc.RefundPayment(context.Background(), "cart_1", 2500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Payment.Data["transaction_amount_refunded"] != 25.0 || o.Payment.Data["id"] != "pay_1" {
			t.Fatalf("unexpected payment data %+v", o.Payment.Data)
		}
	})

	for _, amount := range []int64{0, -1, 10001} {
		t.Run("invalid amount", func(t *testing.T) {
			f := newOrderFixture(t)
			f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
			f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

			if _, err := f.uc.RefundPayment(context.Background(), "cart_1", amount); !errors.Is(err, usecase.ErrInvalidRefundAmount) {
				t.Fatalf("amount %d: expected ErrInvalidRefundAmount, got %v", amount, err)
			}
		})
	}
}

func TestOrderUseCase_CancelPayment(t *testing.T) {
	t.Run("cancels and records time", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
		f.provider.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).Return(entities.Data{"status": "cancelled"}, nil)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		o, err := f.uc.CancelPayment(context.Background(), "cart_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Payment.CanceledAt == nil || o.Payment.Data["status"] != "cancelled" {
			t.Fatalf("unexpected payment %+v", o.Payment)
		}
	})

	t.Run("provider failure keeps order untouched", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().GetByCartID(gomock.Any(), "cart_1").Return(orderWithPayment(), nil)
		f.provider.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrGatewayRequestFailed)
		f.orders.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		if _, err := f.uc.CancelPayment(context.Background(), "cart_1"); !errors.Is(err, usecase.ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})
}
