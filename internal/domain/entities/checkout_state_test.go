package entities

import (
	"testing"
	"time"
)

func TestCheckoutStateOf(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name  string
		cart  Cart
		order *Order
		want  CheckoutState
	}{
		{name: "empty cart", cart: Cart{ID: "cart_1"}, want: CheckoutStateNoSession},
		{name: "session set", cart: Cart{ID: "cart_1", PaymentSession: &PaymentSession{ProviderID: "mercadopago"}}, want: CheckoutStateSessionSet},
		{name: "payment without authorization time", cart: Cart{ID: "cart_1", PaymentSession: &PaymentSession{}, Payment: &Payment{ID: "pay_1"}}, want: CheckoutStateSessionSet},
		{name: "authorized", cart: Cart{ID: "cart_1", PaymentSession: &PaymentSession{}, Payment: &Payment{ID: "pay_1"}, PaymentAuthorizedAt: &now}, want: CheckoutStateAuthorized},
		{name: "order created", cart: Cart{ID: "cart_1"}, order: &Order{ID: "order_1"}, want: CheckoutStateOrderCreated},
		{name: "completed cart without order", cart: Cart{ID: "cart_1", CompletedAt: &now}, want: CheckoutStateOrderCreated},
		{name: "empty order ignored", cart: Cart{ID: "cart_1"}, order: &Order{}, want: CheckoutStateNoSession},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckoutStateOf(tc.cart, tc.order); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to CheckoutState
		want     bool
	}{
		{CheckoutStateNoSession, CheckoutStateSessionSet, true},
		{CheckoutStateNoSession, CheckoutStateOrderCreated, true},
		{CheckoutStateSessionSet, CheckoutStateSessionSet, true},
		{CheckoutStateSessionSet, CheckoutStateAuthorized, true},
		{CheckoutStateAuthorized, CheckoutStateOrderCreated, true},
		{CheckoutStateAuthorized, CheckoutStateSessionSet, false},
		{CheckoutStateOrderCreated, CheckoutStateOrderCreated, false},
		{CheckoutStateOrderCreated, CheckoutStateNoSession, false},
		{CheckoutState("unknown"), CheckoutStateOrderCreated, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
