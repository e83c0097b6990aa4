package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ======================================================
// Reader
// ======================================================

func (s *Store) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, s.assembleService(svc))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out, nil
}

func (s *Store) GetServiceBySlug(_ context.Context, slug string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.serviceBySlug(slug)
	if !ok {
		return nil, nil
	}
	out := s.assembleService(svc)
	return &out, nil
}

func (s *Store) GetSubService(_ context.Context, id string) (*models.SubService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subServices[id]
	if !ok {
		return nil, nil
	}
	out := s.assembleSubService(sub, true)
	return &out, nil
}

func (s *Store) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out, nil
}

// ======================================================
// Writer
// ======================================================

func (s *Store) UpsertService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.serviceBySlug(svc.Slug); ok {
		existing.Name = svc.Name
		s.services[existing.ID] = existing
		svc.ID = existing.ID
		return nil
	}

	svc.ID = newID(svc.ID)
	s.services[svc.ID] = models.Service{ID: svc.ID, Name: svc.Name, Slug: svc.Slug}
	return nil
}

func (s *Store) UpsertSubService(_ context.Context, sub *models.SubService) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.subServices {
		if existing.ServiceID == sub.ServiceID && existing.Slug == sub.Slug {
			existing.Name = sub.Name
			s.subServices[id] = existing
			sub.ID = id
			return nil
		}
	}

	sub.ID = newID(sub.ID)
	s.subServices[sub.ID] = models.SubService{
		ID:          sub.ID,
		ServiceID:   sub.ServiceID,
		Name:        sub.Name,
		Slug:        sub.Slug,
		Description: sub.Description,
	}
	return nil
}

func (s *Store) UpsertPricingConfig(_ context.Context, p *models.PricingConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.pricing[p.SubServiceID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = newID(p.ID)
	}
	s.pricing[p.SubServiceID] = clonePricing(*p)
	return nil
}

func (s *Store) EnsureCategory(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Slug == c.Slug {
			*c = existing
			return nil
		}
	}

	c.ID = newID(c.ID)
	s.categories[c.ID] = *c
	return nil
}

// ------------------------------------------------------
// helpers (s.mu held)
// ------------------------------------------------------

func (s *Store) serviceBySlug(slug string) (models.Service, bool) {
	for _, svc := range s.services {
		if svc.Slug == slug {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *Store) assembleService(svc models.Service) models.Service {
	subs := make([]models.SubService, 0)
	for _, sub := range s.subServices {
		if sub.ServiceID == svc.ID {
			subs = append(subs, s.assembleSubService(sub, false))
		}
	}
	sort.Slice(subs, func(i, k int) bool { return subs[i].Name < subs[k].Name })
	svc.SubServices = subs
	return svc
}

func (s *Store) assembleSubService(sub models.SubService, withService bool) models.SubService {
	if p, ok := s.pricing[sub.ID]; ok {
		cfg := clonePricing(p)
		sub.PricingConfig = &cfg
	}
	if withService {
		if svc, ok := s.services[sub.ServiceID]; ok {
			sub.Service = &svc
		}
	}
	return sub
}

func clonePricing(p models.PricingConfig) models.PricingConfig {
	if p.BasePrice != nil {
		base := *p.BasePrice
		p.BasePrice = &base
	}
	p.SizeOptions = cloneList(p.SizeOptions)
	p.EquipmentOptions = cloneList(p.EquipmentOptions)
	p.Addons = cloneList(p.Addons)
	return p
}
