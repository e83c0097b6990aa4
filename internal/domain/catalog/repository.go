// Package catalog describes the Service → SubService → PricingConfig
// hierarchy as seen by the rest of the system.
package catalog

import (
	"context"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// Reader is the read path used while pricing and creating jobs. Lookups of
// missing rows return (nil, nil).
type Reader interface {
	// ListServices orders services and their sub-services by name and loads
	// every pricing config.
	ListServices(ctx context.Context) ([]models.Service, error)

	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)

	// GetSubService loads the pricing config and the parent service.
	GetSubService(ctx context.Context, id string) (*models.SubService, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Writer is only used by seeding.
type Writer interface {
	// UpsertService inserts by slug, or updates the name of the existing row.
	UpsertService(ctx context.Context, s *models.Service) error

	// UpsertSubService inserts by (serviceId, slug), or updates the name.
	UpsertSubService(ctx context.Context, s *models.SubService) error

	// UpsertPricingConfig replaces the config of p.SubServiceID.
	UpsertPricingConfig(ctx context.Context, p *models.PricingConfig) error

	// EnsureCategory inserts by slug and leaves existing rows untouched.
	EnsureCategory(ctx context.Context, c *models.Category) error
}

type Repository interface {
	Reader
	Writer
}

// Invalidator drops cached catalog reads after the catalog changed.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
