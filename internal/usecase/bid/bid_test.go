package bid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/repository/memory"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func newJob(t *testing.T, s *memory.Store, providerID *string) *models.Job {
	t.Helper()
	j := &models.Job{
		Title:       "Fix sink",
		Description: "Kitchen sink leaks",
		CustomerID:  "customer-1",
		ProviderID:  providerID,
	}
	if providerID != nil {
		j.Status = string(job.StatusAccepted)
	}
	require.NoError(t, s.CreateJob(context.Background(), j))
	return j
}

func TestCreateBid(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		store := memory.NewStore()
		j := newJob(t, store, nil)
		uc := NewCreateBid(store, nil)

		for _, amount := range []int{0, -10} {
			_, err := uc.Execute(ctx, CreateBidInput{JobID: j.ID, ProviderID: "p1", AmountQAR: amount})
			assert.True(t, httperr.IsBusiness(err, "invalid_amount"), "amount %d: %v", amount, err)
		}
	})

	t.Run("requires ids", func(t *testing.T) {
		uc := NewCreateBid(memory.NewStore(), nil)

		_, err := uc.Execute(ctx, CreateBidInput{ProviderID: "p1", AmountQAR: 10})
		assert.True(t, httperr.IsBusiness(err, "missing_job"))

		_, err = uc.Execute(ctx, CreateBidInput{JobID: "j1", AmountQAR: 10})
		assert.True(t, httperr.IsBusiness(err, "missing_provider"))
	})

	t.Run("unknown job surfaces as not found", func(t *testing.T) {
		uc := NewCreateBid(memory.NewStore(), nil)
		_, err := uc.Execute(ctx, CreateBidInput{JobID: "missing", ProviderID: "p1", AmountQAR: 10})
		assert.True(t, httperr.IsNotFound(err, "job_not_found"))
	})

	t.Run("accepted jobs still take bids", func(t *testing.T) {
		store := memory.NewStore()
		j := newJob(t, store, ptr("p0"))
		uc := NewCreateBid(store, nil)

		b, err := uc.Execute(ctx, CreateBidInput{JobID: j.ID, ProviderID: "p1", AmountQAR: 250, Message: ptr("tomorrow")})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), b.Status)
		assert.NotEmpty(t, b.ID)
	})
}

func TestAcceptBid(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown bid", func(t *testing.T) {
		_, err := NewAcceptBid(memory.NewStore(), nil, nil).Execute(ctx, "missing")
		assert.True(t, httperr.IsNotFound(err, "bid_not_found"))
	})

	t.Run("overwrites an existing provider", func(t *testing.T) {
		store := memory.NewStore()
		j := newJob(t, store, ptr("previous"))
		b, err := NewCreateBid(store, nil).Execute(ctx, CreateBidInput{JobID: j.ID, ProviderID: "p1", AmountQAR: 250})
		require.NoError(t, err)

		accepted, err := NewAcceptBid(store, nil, nil).Execute(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusAccepted), accepted.Status)

		stored, err := store.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, "p1", *stored.ProviderID)
		assert.Equal(t, string(job.StatusAccepted), stored.Status)
	})

	t.Run("job write failure rolls back the bid", func(t *testing.T) {
		store := memory.NewStore()
		j := newJob(t, store, nil)
		b, err := NewCreateBid(store, nil).Execute(ctx, CreateBidInput{JobID: j.ID, ProviderID: "p1", AmountQAR: 250})
		require.NoError(t, err)

		core, logs := observer.New(zap.ErrorLevel)
		boom := errors.New("write failed")
		store.FailNext("AssignProvider", boom)

		_, err = NewAcceptBid(store, nil, zap.New(core)).Execute(ctx, b.ID)
		assert.ErrorIs(t, err, boom)

		storedBid, err := store.GetBid(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), storedBid.Status)

		storedJob, err := store.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Nil(t, storedJob.ProviderID)
		assert.Equal(t, string(job.StatusPending), storedJob.Status)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, b.ID, fields["bid_id"])
		assert.Equal(t, j.ID, fields["job_id"])
	})
}

func TestListBids(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	j := newJob(t, store, nil)

	_, err := NewListBids(store).Execute(ctx, "missing")
	assert.True(t, httperr.IsNotFound(err, "job_not_found"))

	create := NewCreateBid(store, nil)
	for _, amount := range []int{100, 200} {
		_, err := create.Execute(ctx, CreateBidInput{JobID: j.ID, ProviderID: "p", AmountQAR: amount})
		require.NoError(t, err)
	}

	bids, err := NewListBids(store).Execute(ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, bids, 2)
}

func ptr[T any](v T) *T { return &v }
