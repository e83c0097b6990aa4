package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoMethod = "pix"

// MercadoPago creates PIX payments. The payment id is the intent id and the
// ticket URL is where the customer pays.
type MercadoPago struct {
	payments    mppayment.Client
	refunds     refund.Client
	callbackURL string
	log         *zap.Logger
}

func NewMercadoPago(accessToken, callbackURL string, log *zap.Logger) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}

	l := logger.OrNop(log).Named("payments.mercadopago")
	l.Info("mercado pago client initialized")

	return &MercadoPago{
		payments:    mppayment.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
		callbackURL: callbackURL,
		log:         l,
	}, nil
}

func (m *MercadoPago) Name() string { return ProviderMercadoPago }

func (m *MercadoPago) CreateIntent(ctx context.Context, in payment.CreateIntentInput) (payment.Intent, error) {
	meta := make(map[string]any, len(in.Metadata))
	for k, v := range in.Metadata {
		meta[k] = v
	}

	req := mppayment.Request{
		TransactionAmount: float64(in.AmountQAR),
		Description:       fmt.Sprintf("Job %s", in.JobID),
		PaymentMethodID:   mercadoPagoMethod,
		ExternalReference: in.JobID,
		NotificationURL:   m.callbackURL,
		Metadata:          meta,
		Payer: &mppayment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	resp, err := m.payments.Create(ctx, req)
	if err != nil {
		m.log.Error("create payment failed", zap.String("job_id", in.JobID), zap.Error(err))
		return payment.Intent{}, err
	}

	intentID := strconv.Itoa(resp.ID)
	m.log.Info("payment created",
		zap.String("intent_id", intentID),
		zap.String("status", resp.Status),
	)

	return payment.Intent{
		Provider:    ProviderMercadoPago,
		IntentID:    intentID,
		RedirectURL: ticketURL(resp),
	}, nil
}

func (m *MercadoPago) Capture(ctx context.Context, intentID string) error {
	id, err := paymentID(intentID)
	if err != nil {
		return err
	}
	if _, err := m.payments.Capture(ctx, id); err != nil {
		m.log.Error("capture failed", zap.String("intent_id", intentID), zap.Error(err))
		return err
	}
	return nil
}

func (m *MercadoPago) Refund(ctx context.Context, intentID string, amountQAR *int) error {
	id, err := paymentID(intentID)
	if err != nil {
		return err
	}

	if amountQAR == nil {
		_, err = m.refunds.Create(ctx, id)
	} else {
		_, err = m.refunds.CreatePartialRefund(ctx, id, float64(*amountQAR))
	}
	if err != nil {
		m.log.Error("refund failed", zap.String("intent_id", intentID), zap.Error(err))
	}
	return err
}

func paymentID(intentID string) (int, error) {
	id, err := strconv.Atoi(intentID)
	if err != nil {
		return 0, fmt.Errorf("mercadopago: intent id %q is not a payment id", intentID)
	}
	return id, nil
}

// ticketURL digs the PIX checkout link out of the response.
func ticketURL(resp *mppayment.Response) string {
	raw, err := json.Marshal(resp)
	if err != nil {
		return ""
	}
	var body struct {
		PointOfInteraction struct {
			TransactionData struct {
				TicketURL string `json:"ticket_url"`
			} `json:"transaction_data"`
		} `json:"point_of_interaction"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.PointOfInteraction.TransactionData.TicketURL
}
