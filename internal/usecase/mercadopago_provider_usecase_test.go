package usecase

import (
	"context"
	"errors"
	"testing"

	"mercadopago_provider/internal/domain/entities"
	mock_interfaces "mercadopago_provider/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProviderUnderTest(t *testing.T) (*MercadoPagoProviderUseCase, *mock_interfaces.MockIPaymentGateway, *mock_interfaces.MockIRegionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	regions := mock_interfaces.NewMockIRegionRepository(ctrl)
	uc := NewMercadoPagoProviderUseCase(gateway, regions, ProviderOptions{
		WebhookURL:     "https://hooks.example.com/",
		SuccessBackURL: "https://store.example.com/checkout",
	})
	return uc, gateway, regions
}

func testCart() entities.Cart {
	return entities.Cart{
		ID:       "cart_1",
		RegionID: "reg_1",
		Email:    "buyer@example.com",
		Items: []entities.LineItem{
			{ID: "item_1", Title: "Coffee", Description: "Whole beans", Quantity: 1, UnitPrice: 10000},
		},
		BillingAddress: &entities.Address{FirstName: "Ana", LastName: "Silva"},
	}
}

func TestMercadoPagoProvider_CreatePayment(t *testing.T) {
	t.Run("builds preference from cart", func(t *testing.T) {
		uc, gateway, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "usd"}, nil)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pref entities.Preference) (entities.PreferenceResult, error) {
				if len(pref.Items) != 1 {
					t.Fatalf("expected 1 item, got %d", len(pref.Items))
				}
				item := pref.Items[0]
				if item.UnitPrice != 100 || item.CurrencyID != "USD" || item.Quantity != 1 || item.ID != "item_1" {
					t.Fatalf("unexpected item: %+v", item)
				}
				if pref.ExternalReference != "cart_1" {
					t.Fatalf("expected external_reference cart_1, got %q", pref.ExternalReference)
				}
				if pref.NotificationURL != "https://hooks.example.com/mercadopago" {
					t.Fatalf("unexpected notification url %q", pref.NotificationURL)
				}
				if pref.BackURLs.Success != "https://store.example.com/checkout/cart_1/" {
					t.Fatalf("unexpected success url %q", pref.BackURLs.Success)
				}
				if pref.Payer.Name != "Ana" || pref.Payer.Surname != "Silva" || pref.Payer.Email != "buyer@example.com" {
					t.Fatalf("unexpected payer: %+v", pref.Payer)
				}
				return entities.PreferenceResult{ID: "pref_1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil
			},
		)

		data, err := uc.CreatePayment(context.Background(), testCart())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data["preferenceId"] != "pref_1" || data["url"] != "https://mp/init" || data["urlSandbox"] != "https://mp/sandbox" {
			t.Fatalf("unexpected data: %+v", data)
		}
	})

	t.Run("cart without billing address", func(t *testing.T) {
		uc, gateway, regions := newProviderUnderTest(t)
		cart := testCart()
		cart.BillingAddress = nil
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "brl"}, nil)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pref entities.Preference) (entities.PreferenceResult, error) {
				if pref.Payer.Name != "" || pref.Payer.Email != "buyer@example.com" {
					t.Fatalf("unexpected payer: %+v", pref.Payer)
				}
				return entities.PreferenceResult{ID: "pref_1"}, nil
			},
		)

		if _, err := uc.CreatePayment(context.Background(), cart); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("region not found", func(t *testing.T) {
		uc, _, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{}, nil)

		_, err := uc.CreatePayment(context.Background(), testCart())
		if !errors.Is(err, ErrRegionNotFound) {
			t.Fatalf("expected ErrRegionNotFound, got %v", err)
		}
	})

	t.Run("region repository error", func(t *testing.T) {
		uc, _, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{}, errors.New("db"))

		_, err := uc.CreatePayment(context.Background(), testCart())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		uc, _, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "xx"}, nil)

		_, err := uc.CreatePayment(context.Background(), testCart())
		if !errors.Is(err, ErrUnknownCurrency) {
			t.Fatalf("expected ErrUnknownCurrency, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		uc, gateway, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "usd"}, nil)
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.PreferenceResult{}, errors.New(`{"status":401,"error":"unauthorized"}`))

		_, err := uc.CreatePayment(context.Background(), testCart())
		if !errors.Is(err, ErrGatewayRequestFailed) || !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected unauthorized gateway error, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_UpdatePayment(t *testing.T) {
	t.Run("missing preference id", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		_, err := uc.UpdatePayment(context.Background(), entities.Data{}, testCart())
		if !errors.Is(err, ErrMissingPreferenceID) {
			t.Fatalf("expected ErrMissingPreferenceID, got %v", err)
		}
	})

	t.Run("updates stored preference", func(t *testing.T) {
		uc, gateway, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "usd"}, nil)
		gateway.EXPECT().UpdatePreference(gomock.Any(), "pref_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, pref entities.Preference) (entities.PreferenceResult, error) {
				if pref.NotificationURL != "" {
					t.Fatalf("update must not resend the notification url")
				}
				if pref.ExternalReference != "cart_1" {
					t.Fatalf("unexpected external reference %q", pref.ExternalReference)
				}
				return entities.PreferenceResult{ID: "pref_1", InitPoint: "https://mp/init2", SandboxInitPoint: "ignored"}, nil
			},
		)

		data, err := uc.UpdatePayment(context.Background(), entities.Data{"preferenceId": "pref_1"}, testCart())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data["preferenceId"] != "pref_1" || data["url"] != "https://mp/init2" {
			t.Fatalf("unexpected data: %+v", data)
		}
		if _, ok := data["urlSandbox"]; ok {
			t.Fatalf("update returns only preferenceId and url")
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, gateway, regions := newProviderUnderTest(t)
		regions.EXPECT().GetByID(gomock.Any(), "reg_1").Return(entities.Region{ID: "reg_1", CurrencyCode: "usd"}, nil)
		gateway.EXPECT().UpdatePreference(gomock.Any(), "pref_1", gomock.Any()).Return(entities.PreferenceResult{}, errors.New("timeout"))

		_, err := uc.UpdatePayment(context.Background(), entities.Data{"preferenceId": "pref_1"}, testCart())
		if !errors.Is(err, ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_GetStatus(t *testing.T) {
	cases := []struct {
		gatewayStatus string
		want          entities.PaymentSessionStatus
	}{
		{"approved", entities.PaymentSessionStatusAuthorized},
		{"authorized", entities.PaymentSessionStatusAuthorized},
		{"refunded", entities.PaymentSessionStatusCanceled},
		{"charged_back", entities.PaymentSessionStatusCanceled},
		{"cancelled", entities.PaymentSessionStatusCanceled},
		{"rejected", entities.PaymentSessionStatusError},
		{"pending", entities.PaymentSessionStatusPending},
		{"in_process", entities.PaymentSessionStatusPending},
		{"in_mediation", entities.PaymentSessionStatusPending},
		{"something_new", entities.PaymentSessionStatusPending},
		{"", entities.PaymentSessionStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.gatewayStatus, func(t *testing.T) {
			uc, gateway, _ := newProviderUnderTest(t)
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: tc.gatewayStatus}, nil)

			got, err := uc.GetStatus(context.Background(), entities.Data{"id": "pay_1"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("missing payment id", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		_, err := uc.GetStatus(context.Background(), entities.Data{"preferenceId": "pref_1"})
		if !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})

	t.Run("numeric payment id", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "123456").Return(entities.GatewayPayment{ID: "123456", Status: "approved"}, nil)

		got, err := uc.GetStatus(context.Background(), entities.Data{"id": float64(123456)})
		if err != nil || got != entities.PaymentSessionStatusAuthorized {
			t.Fatalf("unexpected result status=%s err=%v", got, err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{}, errors.New(`{"status":404,"error":"not_found"}`))

		_, err := uc.GetStatus(context.Background(), entities.Data{"id": "pay_1"})
		if !errors.Is(err, ErrGatewayRequestFailed) || !errors.Is(err, ErrPaymentGatewayNotFound) {
			t.Fatalf("expected not found gateway error, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_RetrieveAndData(t *testing.T) {
	t.Run("retrieve returns raw payment", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		raw := entities.Data{"id": float64(1), "status": "approved", "external_reference": "cart_1"}
		gateway.EXPECT().GetPayment(gomock.Any(), "1").Return(entities.GatewayPayment{ID: "1", Status: "approved", Raw: raw}, nil)

		data, err := uc.RetrievePayment(context.Background(), entities.Data{"id": "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data["external_reference"] != "cart_1" {
			t.Fatalf("unexpected data: %+v", data)
		}
	})

	t.Run("get payment data reads session data", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "pending"}, nil)

		data, err := uc.GetPaymentData(context.Background(), entities.PaymentSession{Data: entities.Data{"id": "pay_1"}})
		if err != nil || data["status"] != "pending" {
			t.Fatalf("unexpected result data=%+v err=%v", data, err)
		}
	})

	t.Run("update payment data merges", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		data, err := uc.UpdatePaymentData(context.Background(), entities.Data{"preferenceId": "pref_1", "url": "a"}, entities.Data{"url": "b"})
		if err != nil || data["preferenceId"] != "pref_1" || data["url"] != "b" {
			t.Fatalf("unexpected result data=%+v err=%v", data, err)
		}
	})
}

func TestMercadoPagoProvider_AuthorizePayment(t *testing.T) {
	t.Run("merges payment id and derives status", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved"}, nil)

		session := entities.PaymentSession{ProviderID: MercadoPagoProviderID, Data: entities.Data{"preferenceId": "pref_1"}}
		res, err := uc.AuthorizePayment(context.Background(), session, entities.Data{"id": "pay_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentSessionStatusAuthorized {
			t.Fatalf("expected authorized, got %s", res.Status)
		}
		if res.Data["id"] != "pay_1" || res.Data["preferenceId"] != "pref_1" {
			t.Fatalf("unexpected data: %+v", res.Data)
		}
		if _, ok := session.Data["id"]; ok {
			t.Fatalf("session data must not be mutated")
		}
	})

	t.Run("pending payment stays pending", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "in_process"}, nil)

		res, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{}, entities.Data{"id": "pay_1"})
		if err != nil || res.Status != entities.PaymentSessionStatusPending {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{}, errors.New("boom"))

		_, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{}, entities.Data{"id": "pay_1"})
		if !errors.Is(err, ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_CapturePayment(t *testing.T) {
	t.Run("captured on gateway returns data unchanged", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved", Captured: true}, nil)
		data := entities.Data{"id": "pay_1", "preferenceId": "pref_1"}

		got, err := uc.CapturePayment(context.Background(), entities.Payment{Data: data})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got["id"] != "pay_1" || got["preferenceId"] != "pref_1" {
			t.Fatalf("expected data unchanged, got %+v", got)
		}
	})

	t.Run("not captured is a no-op", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "authorized"}, nil)
		gateway.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).Times(0)
		gateway.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		data := entities.Data{"id": "pay_1"}

		got, err := uc.CapturePayment(context.Background(), entities.Payment{Data: data})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got["id"] != "pay_1" {
			t.Fatalf("expected input data back, got %+v", got)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		if _, err := uc.CapturePayment(context.Background(), entities.Payment{Data: entities.Data{}}); !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{}, errors.New("boom"))

		if _, err := uc.CapturePayment(context.Background(), entities.Payment{Data: entities.Data{"id": "pay_1"}}); !errors.Is(err, ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_RefundPayment(t *testing.T) {
	t.Run("partial refund then refresh", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gomock.InOrder(
			gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, amount *float64) error {
					if amount == nil || *amount != 10.5 {
						t.Fatalf("expected amount 10.5, got %v", amount)
					}
					return nil
				},
			),
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved", TransactionAmountRefunded: 10.5}, nil),
		)

		data, err := uc.RefundPayment(context.Background(), entities.Payment{CurrencyCode: "usd", Data: entities.Data{"id": "pay_1"}}, 1050)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data["transaction_amount_refunded"] != 10.5 {
			t.Fatalf("unexpected data: %+v", data)
		}
	})

	t.Run("cop refund uses two decimals", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount *float64) error {
				if amount == nil || *amount != 25 {
					t.Fatalf("expected amount 25, got %v", amount)
				}
				return nil
			},
		)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved"}, nil)

		if _, err := uc.RefundPayment(context.Background(), entities.Payment{CurrencyCode: "cop", Data: entities.Data{"id": "pay_1"}}, 2500); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		_, err := uc.RefundPayment(context.Background(), entities.Payment{CurrencyCode: "usd"}, 100)
		if !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", gomock.Any()).Return(errors.New(`{"status":400}`))

		_, err := uc.RefundPayment(context.Background(), entities.Payment{CurrencyCode: "usd", Data: entities.Data{"id": "pay_1"}}, 100)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_CancelPayment(t *testing.T) {
	payment := entities.Payment{CurrencyCode: "usd", Data: entities.Data{"id": "pay_1"}}

	t.Run("already cancelled is idempotent", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		cancelled := entities.GatewayPayment{ID: "pay_1", Status: "cancelled", Raw: entities.Data{"id": "pay_1", "status": "cancelled"}}
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(cancelled, nil).Times(2)

		first, err := uc.CancelPayment(context.Background(), payment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CancelPayment(context.Background(), payment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first["status"] != "cancelled" || second["status"] != "cancelled" {
			t.Fatalf("unexpected records %+v %+v", first, second)
		}
	})

	t.Run("fully refunded is terminal", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "refunded", Captured: true, TransactionAmount: 100, TransactionAmountRefunded: 100}, nil)

		data, err := uc.CancelPayment(context.Background(), payment)
		if err != nil || data["status"] != "refunded" {
			t.Fatalf("unexpected result data=%+v err=%v", data, err)
		}
	})

	t.Run("partially refunded captured payment is refunded in full", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gomock.InOrder(
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "refunded", Captured: true, TransactionAmount: 100, TransactionAmountRefunded: 40}, nil),
			gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", nil).Return(nil),
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "refunded", Captured: true, TransactionAmount: 100, TransactionAmountRefunded: 100}, nil),
		)

		if _, err := uc.CancelPayment(context.Background(), payment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("captured payment is refunded, not cancelled", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gomock.InOrder(
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved", Captured: true}, nil),
			gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", nil).Return(nil).Times(1),
			gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "refunded", Captured: true}, nil),
		)
		gateway.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).Times(0)

		data, err := uc.CancelPayment(context.Background(), payment)
		if err != nil || data["status"] != "refunded" {
			t.Fatalf("unexpected result data=%+v err=%v", data, err)
		}
	})

	t.Run("uncaptured pending payment is cancelled, not refunded", func(t *testing.T) {
		for _, status := range []string{"pending", "in_process"} {
			t.Run(status, func(t *testing.T) {
				uc, gateway, _ := newProviderUnderTest(t)
				gomock.InOrder(
					gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: status}, nil),
					gateway.EXPECT().CancelPayment(gomock.Any(), "pay_1").Return(nil).Times(1),
					gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "cancelled"}, nil),
				)
				gateway.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

				data, err := uc.CancelPayment(context.Background(), payment)
				if err != nil || data["status"] != "cancelled" {
					t.Fatalf("unexpected result data=%+v err=%v", data, err)
				}
			})
		}
	})

	t.Run("authorized uncaptured payment falls through", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "authorized"}, nil).Times(2)

		data, err := uc.CancelPayment(context.Background(), payment)
		if err != nil || data["status"] != "authorized" {
			t.Fatalf("unexpected result data=%+v err=%v", data, err)
		}
	})

	t.Run("refund failure propagates", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "approved", Captured: true}, nil)
		gateway.EXPECT().RefundPayment(gomock.Any(), "pay_1", nil).Return(errors.New("boom"))

		if _, err := uc.CancelPayment(context.Background(), payment); !errors.Is(err, ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})

	t.Run("cancel failure propagates", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{ID: "pay_1", Status: "pending"}, nil)
		gateway.EXPECT().CancelPayment(gomock.Any(), "pay_1").Return(errors.New("boom"))

		if _, err := uc.CancelPayment(context.Background(), payment); !errors.Is(err, ErrGatewayRequestFailed) {
			t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
		}
	})
}

func TestMercadoPagoProvider_NotImplemented(t *testing.T) {
	uc, _, _ := newProviderUnderTest(t)
	ctx := context.Background()

	if err := uc.DeletePayment(ctx, entities.PaymentSession{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("DeletePayment: expected ErrNotImplemented, got %v", err)
	}
	if _, err := uc.CreatePaymentNew(ctx, PaymentProviderDataInput{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("CreatePaymentNew: expected ErrNotImplemented, got %v", err)
	}
	if _, err := uc.UpdatePaymentNew(ctx, entities.Data{}, PaymentProviderDataInput{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("UpdatePaymentNew: expected ErrNotImplemented, got %v", err)
	}
	if uc.Identifier() != "mercadopago" {
		t.Fatalf("unexpected identifier %q", uc.Identifier())
	}
}

func TestMercadoPagoProvider_NotificationPayment(t *testing.T) {
	t.Run("merges fetched payment into body", func(t *testing.T) {
		uc, gateway, _ := newProviderUnderTest(t)
		gateway.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(entities.GatewayPayment{
			ID: "pay_1", Status: "approved", Raw: entities.Data{"id": "pay_1", "external_reference": "cart_1"},
		}, nil)

		body := entities.Data{"type": "payment", "action": "payment.created", "data": map[string]any{"id": "pay_1"}}
		detail, err := uc.NotificationPayment(context.Background(), body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail["action"] != "payment.created" {
			t.Fatalf("expected body fields kept, got %+v", detail)
		}
		payment := entities.AsData(detail["payment"])
		if payment.String("external_reference") != "cart_1" {
			t.Fatalf("unexpected payment: %+v", payment)
		}
	})

	t.Run("body without data id", func(t *testing.T) {
		uc, _, _ := newProviderUnderTest(t)
		_, err := uc.NotificationPayment(context.Background(), entities.Data{"type": "payment"})
		if !errors.Is(err, ErrMissingPaymentID) {
			t.Fatalf("expected ErrMissingPaymentID, got %v", err)
		}
	})
}

func TestGatewayErrorClassification(t *testing.T) {
	if gatewayError(nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
	if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayNotFound(nil) {
		t.Fatalf("nil checks should be false")
	}
	err := gatewayError(errors.New(`{"error":"bad_request"}`))
	if !errors.Is(err, ErrPaymentGatewayBadRequest) || !errors.Is(err, ErrGatewayRequestFailed) {
		t.Fatalf("expected bad request classification, got %v", err)
	}
	err = gatewayError(errors.New("connection reset"))
	if !errors.Is(err, ErrGatewayRequestFailed) || errors.Is(err, ErrPaymentGatewayBadRequest) {
		t.Fatalf("expected generic gateway error, got %v", err)
	}
}
