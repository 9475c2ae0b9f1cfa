package matching

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(nil, DefaultWeights(), zap.NewNop())
	require.NoError(t, err)
	return engine
}

func testProperty(ref string, price float64, zone string, rooms int) *domain.Property {
	return &domain.Property{
		BaseModel: domain.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		TenantID:          uuid.New(),
		Title:             ref,
		PropertyType:      domain.PropertyTypeApartment,
		Price:             price,
		Currency:          "XOF",
		Zone:              zone,
		Rooms:             rooms,
		Status:            domain.PropertyStatusAvailable,
		InternalReference: ref,
	}
}

func TestEngineRank(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	t.Run("ranks a strong match above a weak one", func(t *testing.T) {
		deal := &domain.Deal{
			Type:      domain.DealTypeAchat,
			BudgetMin: fptr(20_000_000),
			BudgetMax: fptr(30_000_000),
			Zones:     domain.StringList{"Cocody"},
			MinRooms:  iptr(3),
		}
		a := testProperty("REF-A", 25_000_000, "Cocody", 3)
		b := testProperty("REF-B", 50_000_000, "Yopougon", 2)

		ranked := engine.Rank(ctx, deal, []*domain.Property{b, a}, 10)
		require.Len(t, ranked, 2)

		assert.Equal(t, "REF-A", ranked[0].Property.InternalReference)
		assert.Equal(t, 95, ranked[0].MatchScore)
		assert.Equal(t, 1.0, ranked[0].Explanation.BudgetScore)
		assert.Equal(t, 1.0, ranked[0].Explanation.LocationScore)
		assert.Equal(t, 1.0, ranked[0].Explanation.SizeScore)
		assert.Equal(t, 0.5, ranked[0].Explanation.PriceCoherenceScore)
		assert.Contains(t, ranked[0].ExplanationText, "Excellent match")

		assert.Equal(t, "REF-B", ranked[1].Property.InternalReference)
		assert.Less(t, ranked[1].MatchScore, ranked[0].MatchScore)
		assert.Equal(t, 0.0, ranked[1].Explanation.BudgetScore)
		assert.Equal(t, 0.0, ranked[1].Explanation.LocationScore)
	})

	t.Run("deal with no criteria scores every candidate the same", func(t *testing.T) {
		deal := &domain.Deal{Type: domain.DealTypeAchat}
		a := testProperty("REF-A", 25_000_000, "Cocody", 3)
		b := testProperty("REF-B", 90_000_000, "Yopougon", 1)

		ranked := engine.Rank(ctx, deal, []*domain.Property{a, b}, 10)
		require.Len(t, ranked, 2)
		// budget, location, size and coherence neutral at 0.5, features full
		assert.Equal(t, 58, ranked[0].MatchScore)
		assert.Equal(t, 58, ranked[1].MatchScore)
	})

	t.Run("invalid candidates are skipped, not fatal", func(t *testing.T) {
		deal := &domain.Deal{Type: domain.DealTypeAchat, BudgetMax: fptr(30_000_000)}
		good := testProperty("REF-OK", 25_000_000, "Cocody", 3)
		bad := testProperty("REF-NAN", math.NaN(), "Cocody", 3)

		ranked := engine.Rank(ctx, deal, []*domain.Property{bad, good}, 10)
		require.Len(t, ranked, 1)
		assert.Equal(t, "REF-OK", ranked[0].Property.InternalReference)
	})

	t.Run("ties break by recency then reference", func(t *testing.T) {
		deal := &domain.Deal{Type: domain.DealTypeAchat}
		older := testProperty("REF-1", 10, "", 0)
		older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := testProperty("REF-2", 10, "", 0)
		newer.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		sameTime := testProperty("REF-0", 10, "", 0)
		sameTime.CreatedAt = older.CreatedAt

		ranked := engine.Rank(ctx, deal, []*domain.Property{older, newer, sameTime}, 10)
		require.Len(t, ranked, 3)
		assert.Equal(t, "REF-2", ranked[0].Property.InternalReference)
		assert.Equal(t, "REF-0", ranked[1].Property.InternalReference)
		assert.Equal(t, "REF-1", ranked[2].Property.InternalReference)
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		deal := &domain.Deal{Type: domain.DealTypeAchat}
		var candidates []*domain.Property
		for i := 0; i < 130; i++ {
			candidates = append(candidates, testProperty(fmt.Sprintf("REF-%03d", i), 1000, "", 0))
		}

		assert.Len(t, engine.Rank(ctx, deal, candidates, 0), DefaultLimit)
		assert.Len(t, engine.Rank(ctx, deal, candidates, 500), MaxLimit)
		assert.Len(t, engine.Rank(ctx, deal, candidates, 5), 5)
	})

	t.Run("empty candidate set yields empty ranking", func(t *testing.T) {
		deal := &domain.Deal{Type: domain.DealTypeAchat}
		assert.Empty(t, engine.Rank(ctx, deal, nil, 10))
	})
}

func TestEngineRankDeterminism(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	deal := &domain.Deal{
		Type:      domain.DealTypeAchat,
		BudgetMin: fptr(10_000_000),
		BudgetMax: fptr(60_000_000),
		Zones:     domain.StringList{"Cocody", "Plateau"},
		MinRooms:  iptr(2),
	}

	// Enough candidates to force the worker pool path.
	var candidates []*domain.Property
	for i := 0; i < 150; i++ {
		p := testProperty(fmt.Sprintf("REF-%03d", i), float64(5_000_000+i*700_000), "Cocody", i%6)
		p.CreatedAt = time.Date(2026, 1, 1+i%28, 0, 0, 0, 0, time.UTC)
		candidates = append(candidates, p)
	}

	first := engine.Rank(ctx, deal, candidates, MaxLimit)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, engine.Rank(ctx, deal, candidates, MaxLimit))
	}

	// Parallel scoring must agree with the sequential path.
	for _, sc := range first[:25] {
		sequential := engine.Rank(ctx, deal, []*domain.Property{sc.Property}, 1)
		require.Len(t, sequential, 1)
		assert.Equal(t, sequential[0].MatchScore, sc.MatchScore)
		assert.Equal(t, sequential[0].Explanation, sc.Explanation)
	}
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	_, err := NewEngine(nil, Weights{Budget: 1, Location: 1}, zap.NewNop())
	assert.Error(t, err)
}
