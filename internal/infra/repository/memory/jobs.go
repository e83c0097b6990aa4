package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func (s *Store) CreateJob(_ context.Context, j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("CreateJob"); err != nil {
		return err
	}

	j.ID = newID(j.ID)
	if j.Status == "" {
		j.Status = string(job.StatusPending)
	}
	now := s.now()
	j.CreatedAt, j.UpdatedAt = now, now

	s.jobs[j.ID] = cloneJob(*j)
	return nil
}

func (s *Store) GetJob(_ context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetJob"); err != nil {
		return nil, err
	}

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	out := s.assembleJob(j)
	return &out, nil
}

func (s *Store) AssignProvider(_ context.Context, j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("AssignProvider"); err != nil {
		return err
	}

	stored, ok := s.jobs[j.ID]
	if !ok {
		return fmt.Errorf("memory: job %s does not exist", j.ID)
	}
	stored.ProviderID = j.ProviderID
	stored.Status = j.Status
	stored.UpdatedAt = s.now()
	s.jobs[j.ID] = stored
	j.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *Store) CreateReview(_ context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[r.JobID]; ok {
		return job.ErrReviewExists
	}
	r.ID = newID(r.ID)
	r.CreatedAt = s.now()
	s.reviews[r.JobID] = *r
	return nil
}

func (s *Store) CreatePhoto(_ context.Context, p *models.JobPhoto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("CreatePhoto"); err != nil {
		return err
	}
	p.ID = newID(p.ID)
	p.CreatedAt = s.now()
	s.photos[p.JobID] = append(s.photos[p.JobID], *p)
	return nil
}

// assembleJob mirrors the preloads of the gorm repository. s.mu must be held.
func (s *Store) assembleJob(j models.Job) models.Job {
	j = cloneJob(j)

	j.Bids = s.bidsForJob(j.ID)
	if p, ok := s.payments[j.ID]; ok {
		j.Payment = &p
	}
	if r, ok := s.reviews[j.ID]; ok {
		j.Review = &r
	}
	if photos := s.photos[j.ID]; len(photos) > 0 {
		j.Photos = append([]models.JobPhoto(nil), photos...)
	}
	if j.CategoryID != nil {
		if c, ok := s.categories[*j.CategoryID]; ok {
			j.Category = &c
		}
	}
	if j.SubServiceID != nil {
		if sub, ok := s.subServices[*j.SubServiceID]; ok {
			assembled := s.assembleSubService(sub, true)
			j.SubService = &assembled
		}
	}
	return j
}

func (s *Store) bidsForJob(jobID string) []models.Bid {
	out := make([]models.Bid, 0)
	for _, id := range s.bidOrder {
		if b := s.bids[id]; b.JobID == jobID {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, k int) bool { return out[i].CreatedAt.Before(out[k].CreatedAt) })
	return out
}

// cloneJob drops associations and copies the selection lists.
func cloneJob(j models.Job) models.Job {
	j.Category = nil
	j.SubService = nil
	j.Customer = nil
	j.Provider = nil
	j.Bids = nil
	j.Payment = nil
	j.Review = nil
	j.Photos = nil
	j.SelectedEquipment = cloneList(j.SelectedEquipment)
	j.SelectedAddons = cloneList(j.SelectedAddons)
	return j
}
