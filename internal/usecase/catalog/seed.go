package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ======================================================
// Services
// ======================================================

// SeedServices upserts the fixture catalog. Running it twice leaves the
// catalog unchanged.
type SeedServices struct {
	repo        domain.Repository
	fixtures    []domain.SeedService
	production  bool
	invalidator domain.Invalidator
	audit       *audit.Dispatcher
	log         *zap.Logger
}

func NewSeedServices(
	repo domain.Repository,
	fixtures []domain.SeedService,
	production bool,
	invalidator domain.Invalidator,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SeedServices {
	return &SeedServices{
		repo:        repo,
		fixtures:    fixtures,
		production:  production,
		invalidator: invalidator,
		audit:       audit,
		log:         logger.OrNop(log),
	}
}

func (uc *SeedServices) Execute(ctx context.Context) ([]models.Service, error) {
	if uc.production {
		return nil, httperr.ErrForbidden("seed_not_allowed")
	}

	for _, fx := range uc.fixtures {
		svc := &models.Service{Name: fx.Name, Slug: fx.Slug}
		if err := uc.repo.UpsertService(ctx, svc); err != nil {
			return nil, err
		}

		for _, subFx := range fx.SubServices {
			sub := &models.SubService{
				ServiceID: svc.ID,
				Name:      subFx.Name,
				Slug:      subFx.Slug,
			}
			if err := uc.repo.UpsertSubService(ctx, sub); err != nil {
				return nil, err
			}

			if subFx.Pricing == nil {
				continue
			}
			if err := uc.repo.UpsertPricingConfig(ctx, pricingFromSeed(sub.ID, subFx.Pricing)); err != nil {
				return nil, err
			}
		}
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx); err != nil {
			uc.log.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "catalog_seeded",
		Entity:   "service",
		Metadata: map[string]int{"services": len(uc.fixtures)},
	})

	return uc.repo.ListServices(ctx)
}

func pricingFromSeed(subServiceID string, p *domain.SeedPricing) *models.PricingConfig {
	base := p.BasePrice
	cfg := &models.PricingConfig{
		SubServiceID:     subServiceID,
		BasePrice:        &base,
		SizeOptions:      make(models.JSONList[models.SizeOption], 0, len(p.SizeOptions)),
		EquipmentOptions: make(models.JSONList[models.PricedOption], 0, len(p.EquipmentOptions)),
		Addons:           make(models.JSONList[models.PricedOption], 0, len(p.Addons)),
	}
	for _, o := range p.SizeOptions {
		cfg.SizeOptions = append(cfg.SizeOptions, models.SizeOption{Size: o.Size, Price: o.Price})
	}
	for _, o := range p.EquipmentOptions {
		cfg.EquipmentOptions = append(cfg.EquipmentOptions, models.PricedOption{Name: o.Name, Price: o.Price})
	}
	for _, o := range p.Addons {
		cfg.Addons = append(cfg.Addons, models.PricedOption{Name: o.Name, Price: o.Price})
	}
	return cfg
}

// ======================================================
// Categories
// ======================================================

// SeedCategories inserts missing categories and never renames existing ones.
type SeedCategories struct {
	repo       domain.Repository
	fixtures   []domain.SeedCategory
	production bool
	audit      *audit.Dispatcher
}

func NewSeedCategories(
	repo domain.Repository,
	fixtures []domain.SeedCategory,
	production bool,
	audit *audit.Dispatcher,
) *SeedCategories {
	return &SeedCategories{
		repo:       repo,
		fixtures:   fixtures,
		production: production,
		audit:      audit,
	}
}

func (uc *SeedCategories) Execute(ctx context.Context) ([]models.Category, error) {
	if uc.production {
		return nil, httperr.ErrForbidden("seed_not_allowed")
	}

	for _, fx := range uc.fixtures {
		if err := uc.repo.EnsureCategory(ctx, &models.Category{Name: fx.Name, Slug: fx.Slug}); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "catalog_seeded",
		Entity:   "category",
		Metadata: map[string]int{"categories": len(uc.fixtures)},
	})

	return uc.repo.ListCategories(ctx)
}
