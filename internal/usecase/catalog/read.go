package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ======================================================
// Services
// ======================================================

type ListServices struct {
	reader domain.Reader
}

func NewListServices(reader domain.Reader) *ListServices {
	return &ListServices{reader: reader}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.reader.ListServices(ctx)
}

type GetServiceBySlug struct {
	reader domain.Reader
}

func NewGetServiceBySlug(reader domain.Reader) *GetServiceBySlug {
	return &GetServiceBySlug{reader: reader}
}

func (uc *GetServiceBySlug) Execute(ctx context.Context, slug string) (*models.Service, error) {
	svc, err := uc.reader.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return svc, nil
}

// ======================================================
// Sub-services
// ======================================================

type GetSubService struct {
	reader domain.Reader
}

func NewGetSubService(reader domain.Reader) *GetSubService {
	return &GetSubService{reader: reader}
}

func (uc *GetSubService) Execute(ctx context.Context, id string) (*models.SubService, error) {
	sub, err := uc.reader.GetSubService(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, httperr.ErrNotFound("sub_service_not_found")
	}
	return sub, nil
}

// ======================================================
// Categories
// ======================================================

type ListCategories struct {
	reader domain.Reader
}

func NewListCategories(reader domain.Reader) *ListCategories {
	return &ListCategories{reader: reader}
}

func (uc *ListCategories) Execute(ctx context.Context) ([]models.Category, error) {
	return uc.reader.ListCategories(ctx)
}
