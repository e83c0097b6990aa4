// Package payment holds the contract between the marketplace and whichever
// payment provider is configured.
package payment

//go:generate mockgen -source=provider.go -destination=mocks/provider_mock.go -package=mocks

import "context"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusCaptured Status = "CAPTURED"
	StatusRefunded Status = "REFUNDED"
)

const DefaultCurrency = "QAR"

type CreateIntentInput struct {
	AmountQAR  int
	Currency   string
	JobID      string
	CustomerID string
	PayerEmail string
	Metadata   map[string]string
}

// Intent is returned to the client and never stored as is.
type Intent struct {
	Provider     string `json:"provider"`
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret,omitempty"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
}

type Provider interface {
	Name() string
	CreateIntent(ctx context.Context, in CreateIntentInput) (Intent, error)
	Capture(ctx context.Context, intentID string) error
	// Refund returns amountQAR, or everything when amountQAR is nil.
	Refund(ctx context.Context, intentID string, amountQAR *int) error
}
