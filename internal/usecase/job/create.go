package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/pricing"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateJobInput struct {
	Title       string
	Description string

	CategoryID   *string
	SubServiceID *string
	CustomerID   string

	ScheduledAt  *time.Time
	LocationText *string

	// A nil list means "not supplied"; an empty one counts as supplied.
	SelectedSize      *string
	SelectedEquipment []string
	SelectedAddons    []string
}

func (in CreateJobInput) selection() pricing.Selection {
	sel := pricing.Selection{
		Equipment: in.SelectedEquipment,
		Addons:    in.SelectedAddons,
	}
	if in.SelectedSize != nil {
		sel.Size = *in.SelectedSize
	}
	return sel
}

// ======================================================
// USE CASE
// ======================================================

type CreateJob struct {
	repo    domain.Repository
	catalog catalog.Reader
	audit   *audit.Dispatcher
}

func NewCreateJob(
	repo domain.Repository,
	catalog catalog.Reader,
	audit *audit.Dispatcher,
) *CreateJob {
	return &CreateJob{
		repo:    repo,
		catalog: catalog,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateJob) Execute(
	ctx context.Context,
	in CreateJobInput,
) (*models.Job, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if err := domain.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(in.Description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, httperr.ErrBusiness("missing_customer")
	}

	categoryID := nonEmpty(in.CategoryID)
	subServiceID := nonEmpty(in.SubServiceID)
	if categoryID == nil && subServiceID == nil {
		return nil, httperr.ErrBusiness("missing_category")
	}

	// --------------------------------------------------
	// Sub-service + frozen estimate
	// --------------------------------------------------
	var estimate *int
	if subServiceID != nil {
		sub, err := uc.catalog.GetSubService(ctx, *subServiceID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, httperr.ErrNotFound("sub_service_not_found")
		}

		sel := in.selection()
		if sub.PricingConfig != nil && !sel.IsEmpty() {
			estimate = pricing.Quote(sub.PricingConfig, sel)
		}
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	j := &models.Job{
		Title:             in.Title,
		Description:       in.Description,
		CategoryID:        categoryID,
		SubServiceID:      subServiceID,
		CustomerID:        in.CustomerID,
		Status:            string(domain.InitialStatus()),
		ScheduledAt:       in.ScheduledAt,
		LocationText:      in.LocationText,
		SelectedSize:      in.SelectedSize,
		SelectedEquipment: in.SelectedEquipment,
		SelectedAddons:    in.SelectedAddons,
		EstimatedPriceQAR: estimate,
	}

	if err := uc.repo.CreateJob(ctx, j); err != nil {
		if errors.Is(err, domain.ErrMissingReference) {
			return nil, httperr.ErrNotFound("referenced_entity_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &j.CustomerID,
		Action:   "job_created",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]any{
			"subServiceId":      j.SubServiceID,
			"estimatedPriceQAR": j.EstimatedPriceQAR,
		},
	})

	created, err := uc.repo.GetJob(ctx, j.ID)
	if err != nil || created == nil {
		return j, nil
	}
	return created, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
