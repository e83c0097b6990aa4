package memory

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func (s *Store) CreateBid(_ context.Context, b *models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[b.JobID]; !ok {
		return bid.ErrJobReference
	}

	b.ID = newID(b.ID)
	if b.Status == "" {
		b.Status = string(bid.StatusPending)
	}
	now := s.now()
	b.CreatedAt, b.UpdatedAt = now, now

	stored := *b
	stored.Provider = nil
	s.bids[b.ID] = stored
	s.bidOrder = append(s.bidOrder, b.ID)
	return nil
}

func (s *Store) GetBid(_ context.Context, id string) (*models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bids[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *Store) ListBidsForJob(_ context.Context, jobID string) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bidsForJob(jobID), nil
}

func (s *Store) UpdateBidStatus(_ context.Context, b *models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("UpdateBidStatus"); err != nil {
		return err
	}

	stored, ok := s.bids[b.ID]
	if !ok {
		return fmt.Errorf("memory: bid %s does not exist", b.ID)
	}
	stored.Status = b.Status
	stored.UpdatedAt = s.now()
	s.bids[b.ID] = stored
	b.UpdatedAt = stored.UpdatedAt
	return nil
}

// RunInTx snapshots jobs and bids and restores them when fn fails. Writes
// made outside RunInTx while fn runs are lost on rollback, which is fine for
// a single-process development store.
func (s *Store) RunInTx(_ context.Context, fn func(tx bid.Repository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	jobs := make(map[string]models.Job, len(s.jobs))
	for k, v := range s.jobs {
		jobs[k] = v
	}
	bids := make(map[string]models.Bid, len(s.bids))
	for k, v := range s.bids {
		bids[k] = v
	}
	order := append([]string(nil), s.bidOrder...)
	s.mu.RUnlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.jobs, s.bids, s.bidOrder = jobs, bids, order
		s.mu.Unlock()
		return err
	}
	return nil
}
