package memory

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func (s *Store) JobExists(_ context.Context, jobID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.jobs[jobID]
	return ok, nil
}

func (s *Store) SavePaymentForJob(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("SavePaymentForJob"); err != nil {
		return err
	}

	now := s.now()
	if existing, ok := s.payments[p.JobID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = newID(p.ID)
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.payments[p.JobID] = *p
	return nil
}

func (s *Store) GetPaymentByIntent(_ context.Context, intentID string) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.IntentID == intentID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdatePaymentStatus(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.payments[p.JobID]
	if !ok || stored.ID != p.ID {
		return fmt.Errorf("memory: payment %s does not exist", p.ID)
	}
	stored.Status = p.Status
	stored.UpdatedAt = s.now()
	s.payments[p.JobID] = stored
	return nil
}
