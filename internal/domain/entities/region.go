package entities

// Region groups carts by market; the currency code drives amount conversion.
type Region struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
}
