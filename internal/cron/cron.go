package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
)

const warmTimeout = 30 * time.Second

type Warmer interface {
	Warm(ctx context.Context) error
}

// StartCatalogWarmer refreshes the catalog cache on spec (standard five-field
// cron syntax or descriptors such as "@every 10m"). Stop the returned
// scheduler on shutdown.
func StartCatalogWarmer(spec string, w Warmer, log *zap.Logger) (*cron.Cron, error) {
	l := logger.OrNop(log).Named("cron")

	c := cron.New()
	if _, err := c.AddFunc(spec, warmJob(w, l)); err != nil {
		return nil, err
	}
	c.Start()

	l.Info("catalog cache warmer scheduled", zap.String("spec", spec))
	return c, nil
}

func warmJob(w Warmer, log *zap.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
		defer cancel()

		started := time.Now()
		if err := w.Warm(ctx); err != nil {
			log.Warn("catalog cache warm failed", zap.Error(err))
			return
		}
		log.Debug("catalog cache warmed", zap.Duration("took", time.Since(started)))
	}
}
