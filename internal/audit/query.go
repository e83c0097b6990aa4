package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// Query filters the audit trail. Zero values mean "any".
type Query struct {
	ActorID string
	Action  string
	Entity  string
	From    *time.Time
	To      *time.Time

	Page  int
	Limit int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Normalize clamps paging to sane bounds.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Reader lists audit rows newest first together with the unpaged total.
type Reader interface {
	ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}
