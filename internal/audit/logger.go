package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var _ Reader = (*Logger)(nil)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

func (l *Logger) ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	db := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if q.ActorID != "" {
		db = db.Where("actor_id = ?", q.ActorID)
	}
	if q.Action != "" {
		db = db.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		db = db.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		db = db.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("created_at < ?", *q.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.AuditLog, 0)
	err := db.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&logs).Error
	return logs, total, err
}

// Discard drops every event. Used when no database is configured.
type Discard struct{}

func (Discard) Log(context.Context, Event) error { return nil }
