// Package memory is a mutex-guarded, process-local implementation of every
// repository the use cases depend on. It backs DB_DRIVER=memory and the use
// case tests.
//
// The only foreign key enforced is a bid's job; reviews, photos and payments
// rely on the use cases loading the job first. User references (a job's
// customer, a bid's provider) are not checked, so ids that postgres rejects
// with a 404 are accepted here.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var (
	_ job.Repository     = (*Store)(nil)
	_ bid.Repository     = (*Store)(nil)
	_ catalog.Repository = (*Store)(nil)
	_ payment.Repository = (*Store)(nil)
	_ user.Repository    = (*Store)(nil)
	_ audit.Sink         = (*Store)(nil)
	_ audit.Reader       = (*Store)(nil)
)

type Store struct {
	mu sync.RWMutex

	// txMu serializes RunInTx callers.
	txMu sync.Mutex

	users map[string]models.User

	categories  map[string]models.Category
	services    map[string]models.Service
	subServices map[string]models.SubService
	pricing     map[string]models.PricingConfig // keyed by sub-service id

	jobs     map[string]models.Job
	bids     map[string]models.Bid
	bidOrder []string
	payments map[string]models.Payment // keyed by job id
	reviews  map[string]models.Review  // keyed by job id
	photos   map[string][]models.JobPhoto

	auditLogs []models.AuditLog

	failures map[string]error
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]models.User),
		categories:  make(map[string]models.Category),
		services:    make(map[string]models.Service),
		subServices: make(map[string]models.SubService),
		pricing:     make(map[string]models.PricingConfig),
		jobs:        make(map[string]models.Job),
		bids:        make(map[string]models.Bid),
		payments:    make(map[string]models.Payment),
		reviews:     make(map[string]models.Review),
		photos:      make(map[string][]models.JobPhoto),
		failures:    make(map[string]error),
		now:         time.Now,
	}
}

// FailNext makes the next call of the named method return err. Tests use it
// to simulate store failures, e.g. FailNext("AssignProvider", err).
func (s *Store) FailNext(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

// takeFailure must be called with s.mu held.
func (s *Store) takeFailure(method string) error {
	err, ok := s.failures[method]
	if !ok {
		return nil
	}
	delete(s.failures, method)
	return err
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func cloneList[T any](l models.JSONList[T]) models.JSONList[T] {
	if l == nil {
		return nil
	}
	out := make(models.JSONList[T], len(l))
	copy(out, l)
	return out
}
