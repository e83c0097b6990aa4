package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var _ catalog.Repository = (*CatalogGormRepository)(nil)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func bySubServiceName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// --------------------------------------------------
// Reader
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.db.WithContext(ctx).
		Preload("SubServices", bySubServiceName).
		Preload("SubServices.PricingConfig").
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *CatalogGormRepository) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	err := r.db.WithContext(ctx).
		Preload("SubServices", bySubServiceName).
		Preload("SubServices.PricingConfig").
		Where("slug = ?", slug).
		First(&svc).Error
	return found(&svc, err)
}

func (r *CatalogGormRepository) GetSubService(ctx context.Context, id string) (*models.SubService, error) {
	var sub models.SubService
	err := r.db.WithContext(ctx).
		Preload("PricingConfig").
		Preload("Service").
		Where("id = ?", id).
		First(&sub).Error
	return found(&sub, err)
}

func (r *CatalogGormRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// --------------------------------------------------
// Writer
// --------------------------------------------------

func (r *CatalogGormRepository) UpsertService(ctx context.Context, svc *models.Service) error {
	db := r.db.WithContext(ctx)

	var existing models.Service
	err := db.Where("slug = ?", svc.Slug).First(&existing).Error
	switch {
	case err == nil:
		svc.ID = existing.ID
		return db.Model(&existing).Update("name", svc.Name).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Omit("SubServices").Create(svc).Error
	default:
		return err
	}
}

func (r *CatalogGormRepository) UpsertSubService(ctx context.Context, sub *models.SubService) error {
	db := r.db.WithContext(ctx)

	var existing models.SubService
	err := db.Where("service_id = ? AND slug = ?", sub.ServiceID, sub.Slug).First(&existing).Error
	switch {
	case err == nil:
		sub.ID = existing.ID
		return db.Model(&existing).Update("name", sub.Name).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Omit("Service", "PricingConfig").Create(sub).Error
	default:
		return err
	}
}

func (r *CatalogGormRepository) UpsertPricingConfig(ctx context.Context, p *models.PricingConfig) error {
	db := r.db.WithContext(ctx)

	var existing models.PricingConfig
	err := db.Where("sub_service_id = ?", p.SubServiceID).First(&existing).Error
	switch {
	case err == nil:
		p.ID = existing.ID
		return db.Model(p).
			Select("base_price", "size_options", "equipment_options", "addons").
			Updates(p).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(p).Error
	default:
		return err
	}
}

func (r *CatalogGormRepository) EnsureCategory(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).
		Where(models.Category{Slug: c.Slug}).
		FirstOrCreate(c).Error
}

func found[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
