package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/pricing"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/repository/memory"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
	jobuc "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/job"
)

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return nil
}

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	_, err := NewSeedServices(store, DefaultServices, false, nil, nil, nil).Execute(context.Background())
	require.NoError(t, err)
	return store
}

func subServiceBySlug(t *testing.T, store *memory.Store, serviceSlug, slug string) *models.SubService {
	t.Helper()
	svc, err := store.GetServiceBySlug(context.Background(), serviceSlug)
	require.NoError(t, err)
	require.NotNil(t, svc)
	for i := range svc.SubServices {
		if svc.SubServices[i].Slug == slug {
			return &svc.SubServices[i]
		}
	}
	t.Fatalf("sub-service %s/%s not seeded", serviceSlug, slug)
	return nil
}

func TestSeedServices(t *testing.T) {
	ctx := context.Background()

	t.Run("refused in production", func(t *testing.T) {
		_, err := NewSeedServices(memory.NewStore(), DefaultServices, true, nil, nil, nil).Execute(ctx)
		assert.True(t, httperr.IsForbidden(err, "seed_not_allowed"))
	})

	t.Run("idempotent", func(t *testing.T) {
		store := memory.NewStore()
		inv := &countingInvalidator{}
		uc := NewSeedServices(store, DefaultServices, false, inv, nil, nil)

		first, err := uc.Execute(ctx)
		require.NoError(t, err)
		second, err := uc.Execute(ctx)
		require.NoError(t, err)

		assert.Len(t, first, len(DefaultServices))
		assert.Equal(t, first, second)
		assert.Equal(t, 2, inv.calls)
	})

	t.Run("ordered by name", func(t *testing.T) {
		services, err := NewListServices(seeded(t)).Execute(ctx)
		require.NoError(t, err)
		for i := 1; i < len(services); i++ {
			assert.LessOrEqual(t, services[i-1].Name, services[i].Name)
		}
	})

	t.Run("only cleaning sub-services are priced", func(t *testing.T) {
		store := seeded(t)
		standard := subServiceBySlug(t, store, "cleaning", "cleaning-standard")
		require.NotNil(t, standard.PricingConfig)
		assert.Equal(t, 100, *standard.PricingConfig.BasePrice)

		ironing := subServiceBySlug(t, store, "cleaning", "ironing")
		assert.Nil(t, ironing.PricingConfig)
	})
}

func TestSeedCategories(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := NewSeedCategories(store, DefaultCategories, true, nil).Execute(ctx)
	assert.True(t, httperr.IsForbidden(err, "seed_not_allowed"))

	cats, err := NewSeedCategories(store, DefaultCategories, false, nil).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(DefaultCategories))
	assert.Equal(t, "AC & Cooling", cats[0].Name)

	again, err := NewListCategories(store).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, again)
}

func TestReaders_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := NewGetServiceBySlug(store).Execute(ctx, "nope")
	assert.True(t, httperr.IsNotFound(err, "service_not_found"))

	_, err = NewGetSubService(store).Execute(ctx, "nope")
	assert.True(t, httperr.IsNotFound(err, "sub_service_not_found"))
}

func TestPreviewPrice(t *testing.T) {
	ctx := context.Background()
	store := seeded(t)
	uc := NewPreviewPrice(store)

	t.Run("missing sub-service", func(t *testing.T) {
		_, err := uc.Execute(ctx, PreviewPriceInput{SubServiceID: "nope"})
		assert.True(t, httperr.IsNotFound(err, "sub_service_not_found"))
	})

	t.Run("sub-service without pricing", func(t *testing.T) {
		ironing := subServiceBySlug(t, store, "cleaning", "ironing")
		_, err := uc.Execute(ctx, PreviewPriceInput{SubServiceID: ironing.ID})
		assert.True(t, httperr.IsBusiness(err, "no_pricing_config"))
	})

	t.Run("empty selection quotes the base price", func(t *testing.T) {
		deep := subServiceBySlug(t, store, "cleaning", "deep-cleaning")
		total, err := uc.Execute(ctx, PreviewPriceInput{SubServiceID: deep.ID})
		require.NoError(t, err)
		assert.Equal(t, 200, total)
	})
}

// The total shown while choosing must equal what the job freezes.
func TestPreviewMatchesJobEstimate(t *testing.T) {
	ctx := context.Background()
	store := seeded(t)
	standard := subServiceBySlug(t, store, "cleaning", "cleaning-standard")

	selections := []pricing.Selection{
		{Size: "60m²", Equipment: []string{"Bring own equipment"}},
		{Size: "99m²"},
		{Addons: []string{"Inside fridge", "Inside fridge", "Unknown"}},
		{Size: "100m²+", Equipment: []string{}, Addons: []string{"Curtain cleaning", "Inside cabinets"}},
	}

	preview := NewPreviewPrice(store)
	create := jobuc.NewCreateJob(store, store, nil)

	for _, sel := range selections {
		quoted, err := preview.Execute(ctx, PreviewPriceInput{SubServiceID: standard.ID, Selection: sel})
		require.NoError(t, err)

		in := jobuc.CreateJobInput{
			Title:             "Clean flat",
			Description:       "Whole apartment",
			CustomerID:        "customer-1",
			SubServiceID:      &standard.ID,
			SelectedEquipment: sel.Equipment,
			SelectedAddons:    sel.Addons,
		}
		if sel.Size != "" {
			size := sel.Size
			in.SelectedSize = &size
		}

		j, err := create.Execute(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, j.EstimatedPriceQAR)
		assert.Equal(t, quoted, *j.EstimatedPriceQAR, "selection %+v", sel)
	}
}
