package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/pricing"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
)

type PreviewPriceInput struct {
	SubServiceID string
	Selection    pricing.Selection
}

// PreviewPrice quotes a selection while the customer is still choosing. An
// empty selection is quoted at the base price.
type PreviewPrice struct {
	reader domain.Reader
}

func NewPreviewPrice(reader domain.Reader) *PreviewPrice {
	return &PreviewPrice{reader: reader}
}

func (uc *PreviewPrice) Execute(ctx context.Context, in PreviewPriceInput) (int, error) {
	sub, err := uc.reader.GetSubService(ctx, in.SubServiceID)
	if err != nil {
		return 0, err
	}
	if sub == nil {
		return 0, httperr.ErrNotFound("sub_service_not_found")
	}
	if sub.PricingConfig == nil {
		return 0, httperr.ErrBusiness("no_pricing_config")
	}

	return pricing.Compute(sub.PricingConfig, in.Selection), nil
}
