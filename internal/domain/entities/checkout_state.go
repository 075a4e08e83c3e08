package entities

// CheckoutState is the per-cart lifecycle driven by payment notifications:
//
//	no_session -> session_set -> authorized -> order_created
//
// Transitions only move forward. order_created is terminal.
type CheckoutState string

const (
	CheckoutStateNoSession    CheckoutState = "no_session"
	CheckoutStateSessionSet   CheckoutState = "session_set"
	CheckoutStateAuthorized   CheckoutState = "authorized"
	CheckoutStateOrderCreated CheckoutState = "order_created"
)

var checkoutStateRank = map[CheckoutState]int{
	CheckoutStateNoSession:    0,
	CheckoutStateSessionSet:   1,
	CheckoutStateAuthorized:   2,
	CheckoutStateOrderCreated: 3,
}

// CheckoutStateOf derives the state of a cart from what is stored for it.
// A nil order means none was found for the cart; a completed cart still counts
// as order_created.
func CheckoutStateOf(cart Cart, order *Order) CheckoutState {
	switch {
	case order != nil && order.ID != "", cart.CompletedAt != nil:
		return CheckoutStateOrderCreated
	case cart.Payment != nil && cart.PaymentAuthorizedAt != nil:
		return CheckoutStateAuthorized
	case cart.PaymentSession != nil:
		return CheckoutStateSessionSet
	default:
		return CheckoutStateNoSession
	}
}

// CanTransition reports whether moving from one state to another is allowed.
// Re-entering session_set is allowed so a session can be replaced before
// authorization.
func CanTransition(from, to CheckoutState) bool {
	f, okFrom := checkoutStateRank[from]
	t, okTo := checkoutStateRank[to]
	if !okFrom || !okTo {
		return false
	}
	if from == CheckoutStateSessionSet && to == CheckoutStateSessionSet {
		return true
	}
	return t > f
}
