package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/pricing"
	"github.com/BruksfildServices01/handyman-marketplace/internal/dto"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/catalog"
)

// CatalogUseCases groups the catalog operations served over HTTP.
type CatalogUseCases struct {
	ListServices   *ucCatalog.ListServices
	GetService     *ucCatalog.GetServiceBySlug
	GetSubService  *ucCatalog.GetSubService
	ListCategories *ucCatalog.ListCategories
	PreviewPrice   *ucCatalog.PreviewPrice
	SeedServices   *ucCatalog.SeedServices
	SeedCategories *ucCatalog.SeedCategories
}

type CatalogHandler struct {
	uc CatalogUseCases
}

func NewCatalogHandler(uc CatalogUseCases) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type CalculatePriceRequest struct {
	SelectedSize      string   `json:"selectedSize"`
	SelectedEquipment []string `json:"selectedEquipment"`
	SelectedAddons    []string `json:"selectedAddons"`
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.uc.ListServices.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_services", "Failed to load services.")
		return
	}
	httpresp.OK(c, services)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.uc.GetService.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_service", "Failed to load service.")
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) GetSubService(c *gin.Context) {
	sub, err := h.uc.GetSubService.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_sub_service", "Failed to load sub-service.")
		return
	}
	httpresp.OK(c, sub)
}

func (h *CatalogHandler) CalculatePrice(c *gin.Context) {
	var req CalculatePriceRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	total, err := h.uc.PreviewPrice.Execute(c.Request.Context(), ucCatalog.PreviewPriceInput{
		SubServiceID: c.Param("id"),
		Selection: pricing.Selection{
			Size:      req.SelectedSize,
			Equipment: req.SelectedEquipment,
			Addons:    req.SelectedAddons,
		},
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_calculate_price", "Failed to calculate price.")
		return
	}
	httpresp.OK(c, dto.PriceQuoteDTO{TotalPriceQAR: total})
}

func (h *CatalogHandler) SeedServices(c *gin.Context) {
	services, err := h.uc.SeedServices.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_seed_services", "Failed to seed services.")
		return
	}
	httpresp.OK(c, dto.SeedServicesDTO{OK: true, Count: len(services), Services: services})
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.ListCategories.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_categories", "Failed to load categories.")
		return
	}
	httpresp.OK(c, categories)
}

func (h *CatalogHandler) SeedCategories(c *gin.Context) {
	categories, err := h.uc.SeedCategories.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_seed_categories", "Failed to seed categories.")
		return
	}
	httpresp.OK(c, dto.SeedCategoriesDTO{OK: true, Count: len(categories), Categories: categories})
}
