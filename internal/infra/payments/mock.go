package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
)

// Mock issues intents without talking to anyone. Capture and refund always
// succeed.
type Mock struct {
	now func() time.Time
}

func NewMock() *Mock {
	return &Mock{now: time.Now}
}

func (m *Mock) Name() string { return ProviderMock }

func (m *Mock) CreateIntent(_ context.Context, in payment.CreateIntentInput) (payment.Intent, error) {
	return payment.Intent{
		Provider:     ProviderMock,
		IntentID:     fmt.Sprintf("mock_intent_%s_%d", in.JobID, m.now().UnixMilli()),
		ClientSecret: "mock_secret",
	}, nil
}

func (m *Mock) Capture(context.Context, string) error { return nil }

func (m *Mock) Refund(context.Context, string, *int) error { return nil }
