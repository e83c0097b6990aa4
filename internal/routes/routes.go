package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/config"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/handyman-marketplace/internal/handlers"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
	"github.com/BruksfildServices01/handyman-marketplace/internal/middleware"
	ucBid "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/bid"
	ucCatalog "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/catalog"
	ucJob "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/job"
	ucPayment "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/payment"
)

// Deps are the long-lived collaborators the HTTP layer is built from.
// CatalogReader may wrap Catalog with a cache; CatalogInvalidator,
// PaymentProvider, PhotoEncoder and PhotoStorage may be nil.
type Deps struct {
	Jobs     job.Repository
	Bids     bid.Repository
	Catalog  catalog.Repository
	Payments payment.Repository
	Users    user.Repository

	CatalogReader      catalog.Reader
	CatalogInvalidator catalog.Invalidator

	PaymentProvider payment.Provider
	PhotoEncoder    job.ImageEncoder
	PhotoStorage    job.PhotoStorage

	Audit      *audit.Dispatcher
	AuditTrail audit.Reader
	Log        *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	log := logger.OrNop(deps.Log)

	r.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORSMiddleware(cfg.AllowedOrigin),
		middleware.RateLimitMiddleware(cfg.RateLimitPerMin, log),
	)

	reader := deps.CatalogReader
	if reader == nil {
		reader = deps.Catalog
	}

	// ======================================================
	// USE CASES: JOBS
	// ======================================================
	createJobUC := ucJob.NewCreateJob(deps.Jobs, reader, deps.Audit)
	getJobUC := ucJob.NewGetJob(deps.Jobs)
	acceptJobUC := ucJob.NewAcceptJob(deps.Jobs, deps.Audit, log)
	addReviewUC := ucJob.NewAddReview(deps.Jobs, deps.Audit)
	addPhotoUC := ucJob.NewAddPhoto(deps.Jobs, deps.PhotoEncoder, deps.PhotoStorage, deps.Audit)

	// ======================================================
	// USE CASES: BIDS
	// ======================================================
	createBidUC := ucBid.NewCreateBid(deps.Bids, deps.Audit)
	acceptBidUC := ucBid.NewAcceptBid(deps.Bids, deps.Audit, log)
	listBidsUC := ucBid.NewListBids(deps.Bids)

	// ======================================================
	// USE CASES: CATALOG
	// ======================================================
	catalogUC := handlers.CatalogUseCases{
		ListServices:   ucCatalog.NewListServices(reader),
		GetService:     ucCatalog.NewGetServiceBySlug(reader),
		GetSubService:  ucCatalog.NewGetSubService(reader),
		ListCategories: ucCatalog.NewListCategories(reader),
		PreviewPrice:   ucCatalog.NewPreviewPrice(reader),
		SeedServices: ucCatalog.NewSeedServices(
			deps.Catalog,
			ucCatalog.DefaultServices,
			cfg.IsProduction(),
			deps.CatalogInvalidator,
			deps.Audit,
			log,
		),
		SeedCategories: ucCatalog.NewSeedCategories(
			deps.Catalog,
			ucCatalog.DefaultCategories,
			cfg.IsProduction(),
			deps.Audit,
		),
	}

	// ======================================================
	// USE CASES: PAYMENTS
	// ======================================================
	createIntentUC := ucPayment.NewCreateIntent(deps.Payments, deps.PaymentProvider, deps.Audit)
	captureUC := ucPayment.NewCapture(deps.Payments, deps.PaymentProvider, deps.Audit)
	refundUC := ucPayment.NewRefund(deps.Payments, deps.PaymentProvider, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(cfg.Env)
	authHandler := handlers.NewAuthHandler(deps.Users, cfg.JWTSecret)
	meHandler := handlers.NewMeHandler(deps.Users, deps.AuditTrail)
	jobHandler := handlers.NewJobHandler(createJobUC, getJobUC, acceptJobUC, addReviewUC, addPhotoUC, listBidsUC)
	bidHandler := handlers.NewBidHandler(createBidUC, acceptBidUC)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	paymentHandler := handlers.NewPaymentHandler(createIntentUC, captureUC, refundUC)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("", meHandler.GetMe)
			secured.GET("/audit-logs", meHandler.AuditLogs)
		}

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/categories", catalogHandler.ListCategories)
		api.POST("/categories/seed", catalogHandler.SeedCategories)

		api.GET("/services", catalogHandler.ListServices)
		api.POST("/services/seed", catalogHandler.SeedServices)
		api.GET("/services/:slug", catalogHandler.GetService)
		api.GET("/services/sub-service/:id", catalogHandler.GetSubService)
		api.POST("/services/sub-service/:id/calculate-price", catalogHandler.CalculatePrice)

		// ------------------------------
		// JOBS
		// ------------------------------
		api.POST("/jobs", jobHandler.Create)
		api.GET("/jobs/:id", jobHandler.Get)
		api.POST("/jobs/:id/accept", jobHandler.Accept)
		api.GET("/jobs/:id/bids", jobHandler.ListBids)
		api.POST("/jobs/:id/review", jobHandler.Review)
		api.POST("/jobs/:id/photos", jobHandler.UploadPhoto)

		// ------------------------------
		// BIDS
		// ------------------------------
		api.POST("/bids", bidHandler.Create)
		api.POST("/bids/:id/accept", bidHandler.Accept)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.POST("/payments/intent", paymentHandler.CreateIntent)
		api.POST("/payments/:intentId/capture", paymentHandler.Capture)
		api.POST("/payments/:intentId/refund", paymentHandler.Refund)
	}
}
