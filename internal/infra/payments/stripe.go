package payments

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
)

var ErrMissingStripeKey = errors.New("missing STRIPE_SECRET_KEY")

// QAR has two decimal places; Stripe wants minor units.
const qarMinorUnits = 100

// Stripe creates manually captured PaymentIntents.
type Stripe struct {
	api *client.API
	log *zap.Logger
}

func NewStripe(secretKey string, log *zap.Logger) (*Stripe, error) {
	if secretKey == "" {
		return nil, ErrMissingStripeKey
	}
	l := logger.OrNop(log).Named("payments.stripe")
	l.Info("stripe client initialized")
	return &Stripe{api: client.New(secretKey, nil), log: l}, nil
}

func (s *Stripe) Name() string { return ProviderStripe }

func (s *Stripe) CreateIntent(ctx context.Context, in payment.CreateIntentInput) (payment.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(in.AmountQAR) * qarMinorUnits),
		Currency:      stripe.String(strings.ToLower(in.Currency)),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		s.log.Error("create intent failed", zap.String("job_id", in.JobID), zap.Error(err))
		return payment.Intent{}, err
	}

	s.log.Info("intent created", zap.String("intent_id", pi.ID), zap.String("job_id", in.JobID))
	return payment.Intent{
		Provider:     ProviderStripe,
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (s *Stripe) Capture(ctx context.Context, intentID string) error {
	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx

	if _, err := s.api.PaymentIntents.Capture(intentID, params); err != nil {
		s.log.Error("capture failed", zap.String("intent_id", intentID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Stripe) Refund(ctx context.Context, intentID string, amountQAR *int) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	}
	if amountQAR != nil {
		params.Amount = stripe.Int64(int64(*amountQAR) * qarMinorUnits)
	}
	params.Context = ctx

	if _, err := s.api.Refunds.New(params); err != nil {
		s.log.Error("refund failed", zap.String("intent_id", intentID), zap.Error(err))
		return err
	}
	return nil
}
