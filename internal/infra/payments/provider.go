package payments

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
)

const (
	ProviderMock        = "mock"
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

type Options struct {
	Provider            string
	StripeSecretKey     string
	MercadoPagoToken    string
	MercadoPagoCallback string
}

// New returns the provider named by opts.Provider. An empty name selects the
// mock provider.
func New(opts Options, log *zap.Logger) (payment.Provider, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderMock:
		return NewMock(), nil
	case ProviderStripe:
		return NewStripe(opts.StripeSecretKey, log)
	case ProviderMercadoPago:
		return NewMercadoPago(opts.MercadoPagoToken, opts.MercadoPagoCallback, log)
	default:
		return nil, fmt.Errorf("payments: unknown provider %q", opts.Provider)
	}
}
