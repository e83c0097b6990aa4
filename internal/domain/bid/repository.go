package bid

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type Repository interface {
	// CreateBid returns ErrJobReference or ErrProviderReference when the
	// store rejects the foreign key.
	CreateBid(ctx context.Context, b *models.Bid) error

	// GetBid and GetJob return nil when the row does not exist.
	GetBid(ctx context.Context, id string) (*models.Bid, error)

	ListBidsForJob(ctx context.Context, jobID string) ([]models.Bid, error)

	UpdateBidStatus(ctx context.Context, b *models.Bid) error

	GetJob(ctx context.Context, id string) (*models.Job, error)

	AssignProvider(ctx context.Context, j *models.Job) error

	// RunInTx runs fn against a repository bound to a single transaction.
	// Every write made through tx is rolled back if fn returns an error.
	RunInTx(ctx context.Context, fn func(tx Repository) error) error
}

var (
	ErrJobReference      = errors.New("bid references a missing job")
	ErrProviderReference = errors.New("bid references a missing provider")
)
