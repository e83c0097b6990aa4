package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/config"
	"github.com/BruksfildServices01/handyman-marketplace/internal/cron"
	dbpkg "github.com/BruksfildServices01/handyman-marketplace/internal/db"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/cache"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/handyman-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/repository/memory"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/handyman-marketplace/internal/routes"
)

const driverMemory = "memory"

// app owns everything that has to be closed on shutdown.
type app struct {
	deps    routes.Deps
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DBDriver == driverMemory {
		return nil, errors.New("DB_DRIVER=memory has no database to open")
	}
	return dbpkg.Open(cfg.DBUrl, cfg.IsProduction(), log)
}

// buildApp wires stores, cache, payments and photo storage from cfg.
func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{}
	var sink audit.Sink

	// ------------------------------------------------------
	// stores
	// ------------------------------------------------------
	if cfg.DBDriver == driverMemory {
		store := memory.NewStore()
		a.deps.Jobs = store
		a.deps.Bids = store
		a.deps.Catalog = store
		a.deps.Payments = store
		a.deps.Users = store
		a.deps.AuditTrail = store
		sink = store
		log.Warn("using in-memory store, data is lost on restart")
	} else {
		gdb, err := openDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		if err := dbpkg.Migrate(gdb); err != nil {
			return nil, err
		}
		if sqlDB, err := gdb.DB(); err == nil {
			a.closers = append(a.closers, func() { _ = sqlDB.Close() })
		}

		auditLogger := audit.New(gdb)
		a.deps.Jobs = infraRepo.NewJobGormRepository(gdb)
		a.deps.Bids = infraRepo.NewBidGormRepository(gdb)
		a.deps.Catalog = infraRepo.NewCatalogGormRepository(gdb)
		a.deps.Payments = infraRepo.NewPaymentGormRepository(gdb)
		a.deps.Users = infraRepo.NewUserGormRepository(gdb)
		a.deps.AuditTrail = auditLogger
		sink = auditLogger
	}

	dispatcher := audit.NewDispatcher(sink, log)
	a.deps.Audit = dispatcher
	a.deps.Log = log
	a.closers = append(a.closers, dispatcher.Close)

	// ------------------------------------------------------
	// catalog cache
	// ------------------------------------------------------
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisCacheDB,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })

		cached := cache.NewCatalog(a.deps.Catalog, rdb, cfg.CatalogCacheTTL, log)
		a.deps.CatalogReader = cached
		a.deps.CatalogInvalidator = cached

		if cfg.CatalogRefreshSpec != "" {
			scheduler, err := cron.StartCatalogWarmer(cfg.CatalogRefreshSpec, cached, log)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("catalog warmer: %w", err)
			}
			a.closers = append(a.closers, func() { <-scheduler.Stop().Done() })
		}
	}

	// ------------------------------------------------------
	// payments
	// ------------------------------------------------------
	provider, err := payments.New(payments.Options{
		Provider:            cfg.PaymentsProvider,
		StripeSecretKey:     cfg.StripeSecretKey,
		MercadoPagoToken:    cfg.MercadoPagoAccessToken,
		MercadoPagoCallback: cfg.PaymentsReturnURL,
	}, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.deps.PaymentProvider = provider

	// ------------------------------------------------------
	// job photos
	// ------------------------------------------------------
	a.deps.PhotoEncoder = storage.NewWebPEncoder()
	if cfg.S3Bucket != "" {
		s3, err := storage.NewS3(storage.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		}, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.deps.PhotoStorage = s3
	} else {
		log.Info("S3_BUCKET not set, job photo uploads disabled")
	}

	return a, nil
}
