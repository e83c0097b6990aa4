package memory

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func (s *Store) Log(_ context.Context, ev audit.Event) error {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.auditLogs = append(s.auditLogs, models.AuditLog{
		ID:        newID(""),
		ActorID:   ev.ActorID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  meta,
		CreatedAt: s.now(),
	})
	return nil
}

// AuditLogs returns a copy of every recorded event, oldest first.
func (s *Store) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditLog(nil), s.auditLogs...)
}

func (s *Store) ListAuditLogs(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	s.mu.RLock()
	matched := make([]models.AuditLog, 0)
	for _, l := range s.auditLogs {
		if q.ActorID != "" && (l.ActorID == nil || *l.ActorID != q.ActorID) {
			continue
		}
		if q.Action != "" && l.Action != q.Action {
			continue
		}
		if q.Entity != "" && l.Entity != q.Entity {
			continue
		}
		if q.From != nil && l.CreatedAt.Before(*q.From) {
			continue
		}
		if q.To != nil && !l.CreatedAt.Before(*q.To) {
			continue
		}
		matched = append(matched, l)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
