package entities

// Preference is the checkout intent submitted to the gateway.
// ExternalReference always carries the cart id.
type Preference struct {
	Items             []PreferenceItem
	Payer             PreferencePayer
	NotificationURL   string
	ExternalReference string
	BackURLs          PreferenceBackURLs
}

type PreferenceItem struct {
	ID          string
	Title       string
	Description string
	Quantity    int
	UnitPrice   float64
	CurrencyID  string
}

type PreferencePayer struct {
	Name    string
	Surname string
	Email   string
}

type PreferenceBackURLs struct {
	Success string
	Pending string
	Failure string
}

// PreferenceResult is what the gateway returns for a created or updated preference.
type PreferenceResult struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}
