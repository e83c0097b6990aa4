package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

func intPtr(v int) *int { return &v }

func TestStore_CatalogUpserts(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	svc := &models.Service{Name: "Cleaning", Slug: "cleaning"}
	require.NoError(t, s.UpsertService(ctx, svc))
	firstID := svc.ID

	again := &models.Service{Name: "Home Cleaning", Slug: "cleaning"}
	require.NoError(t, s.UpsertService(ctx, again))
	assert.Equal(t, firstID, again.ID)

	sub := &models.SubService{ServiceID: svc.ID, Name: "Standard", Slug: "standard"}
	require.NoError(t, s.UpsertSubService(ctx, sub))
	require.NoError(t, s.UpsertPricingConfig(ctx, &models.PricingConfig{
		SubServiceID: sub.ID,
		BasePrice:    intPtr(100),
	}))
	require.NoError(t, s.UpsertPricingConfig(ctx, &models.PricingConfig{
		SubServiceID: sub.ID,
		BasePrice:    intPtr(120),
		Addons:       models.JSONList[models.PricedOption]{{Name: "Fridge", Price: 40}},
	}))

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Home Cleaning", services[0].Name)
	require.Len(t, services[0].SubServices, 1)

	got, err := s.GetSubService(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PricingConfig)
	assert.Equal(t, 120, *got.PricingConfig.BasePrice)
	assert.Len(t, got.PricingConfig.Addons, 1)
	require.NotNil(t, got.Service)
	assert.Equal(t, "cleaning", got.Service.Slug)

	missing, err := s.GetServiceBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_EnsureCategoryKeepsExisting(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.EnsureCategory(ctx, &models.Category{Name: "Plumbing", Slug: "plumbing"}))
	require.NoError(t, s.EnsureCategory(ctx, &models.Category{Name: "Renamed", Slug: "plumbing"}))

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Plumbing", cats[0].Name)
}

func TestStore_BidsRequireJob(t *testing.T) {
	err := NewStore().CreateBid(context.Background(), &models.Bid{JobID: "missing", ProviderID: "p", AmountQAR: 10})
	assert.ErrorIs(t, err, bid.ErrJobReference)
}

func TestStore_UserReferencesAreNotChecked(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	j := &models.Job{Title: "Fix sink", Description: "Leaking", CustomerID: "no-such-customer"}
	require.NoError(t, s.CreateJob(ctx, j))
	require.NoError(t, s.CreateBid(ctx, &models.Bid{JobID: j.ID, ProviderID: "no-such-provider", AmountQAR: 10}))

	bids, err := s.ListBidsForJob(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, "no-such-provider", bids[0].ProviderID)
}

func TestStore_RunInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	j := &models.Job{Title: "Fix sink", Description: "Leaking", CustomerID: "c1"}
	require.NoError(t, s.CreateJob(ctx, j))
	b := &models.Bid{JobID: j.ID, ProviderID: "p1", AmountQAR: 250}
	require.NoError(t, s.CreateBid(ctx, b))

	boom := errors.New("boom")
	err := s.RunInTx(ctx, func(tx bid.Repository) error {
		b.Status = string(bid.StatusAccepted)
		require.NoError(t, tx.UpdateBidStatus(ctx, b))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := s.GetBid(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(bid.StatusPending), stored.Status)
}

func TestStore_GetJobLoadsAssociations(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	j := &models.Job{Title: "Fix sink", Description: "Leaking", CustomerID: "c1"}
	require.NoError(t, s.CreateJob(ctx, j))
	assert.Equal(t, string(job.StatusPending), j.Status)

	for _, amount := range []int{300, 200} {
		require.NoError(t, s.CreateBid(ctx, &models.Bid{JobID: j.ID, ProviderID: "p", AmountQAR: amount}))
	}
	require.NoError(t, s.CreateReview(ctx, &models.Review{JobID: j.ID, Rating: 5}))
	assert.ErrorIs(t, s.CreateReview(ctx, &models.Review{JobID: j.ID, Rating: 4}), job.ErrReviewExists)

	got, err := s.GetJob(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, got.Bids, 2)
	assert.Equal(t, 300, got.Bids[0].AmountQAR)
	require.NotNil(t, got.Review)
	assert.Equal(t, 5, got.Review.Rating)
}

func TestStore_FailNextIsOneShot(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	s.FailNext("CreateJob", boom)
	assert.ErrorIs(t, s.CreateJob(ctx, &models.Job{}), boom)
	assert.NoError(t, s.CreateJob(ctx, &models.Job{}))
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u := &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.Equal(t, models.RoleCustomer, u.Role)

	err := s.CreateUser(ctx, &models.User{Name: "Dup", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	got, err := s.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}
