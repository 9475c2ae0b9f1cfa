package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

const (
	// DefaultLimit is the number of ranked matches returned when the caller
	// does not ask for a specific amount.
	DefaultLimit = 20
	// MaxLimit caps how many ranked matches a single request may ask for.
	MaxLimit = 100

	// parallelThreshold is the candidate count above which scoring fans out
	// to a worker pool.
	parallelThreshold = 64
	// maxWorkers bounds the scoring pool.
	maxWorkers = 8
)

// ScoredCandidate is one ranked match produced by the engine. It is never
// persisted as-is; the shortlist flow copies the fields it keeps.
type ScoredCandidate struct {
	Property        *domain.Property
	MatchScore      int
	Explanation     domain.MatchExplanation
	ExplanationText string
}

// Engine ranks a tenant's property inventory against a deal's criteria.
// It is stateless between calls apart from the comparable-statistics cache
// and safe for concurrent use.
type Engine struct {
	weights Weights
	stats   *StatsCache
	logger  *zap.Logger
}

// NewEngine creates a matching engine. The stats cache may be nil, in which
// case the price-coherence dimension always stays neutral.
func NewEngine(stats *StatsCache, weights Weights, logger *zap.Logger) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{weights: weights, stats: stats, logger: logger}, nil
}

// Rank scores every candidate against the deal's criteria and returns the
// top matches ordered by score, recency and reference. Candidates with
// invalid numeric data are skipped with a warning; they never fail the batch.
func (e *Engine) Rank(ctx context.Context, deal *domain.Deal, candidates []*domain.Property, limit int) []ScoredCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	criteria := ExtractCriteria(deal)
	dims := e.dimensions(ctx)

	// Index-addressed results keep the output independent of worker
	// scheduling order.
	results := make([]*ScoredCandidate, len(candidates))
	score := func(i int) {
		sc, err := e.scoreOne(dims, candidates[i], criteria)
		if err != nil {
			e.logger.Warn("skipping candidate with invalid data",
				zap.String("property_id", candidates[i].ID.String()),
				zap.Error(err))
			return
		}
		results[i] = sc
	}

	if len(candidates) > parallelThreshold {
		e.scoreParallel(len(candidates), score)
	} else {
		for i := range candidates {
			score(i)
		}
	}

	ranked := make([]ScoredCandidate, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if !a.Property.CreatedAt.Equal(b.Property.CreatedAt) {
			return a.Property.CreatedAt.After(b.Property.CreatedAt)
		}
		return a.Property.InternalReference < b.Property.InternalReference
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (e *Engine) scoreParallel(n int, score func(int)) {
	workers := maxWorkers
	if n < workers {
		workers = n
	}
	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				score(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}

func (e *Engine) dimensions(ctx context.Context) []Dimension {
	var lookup StatsLookup
	if e.stats != nil {
		lookup = func(p *domain.Property) (ZoneStats, bool) {
			if p.Zone == "" {
				return ZoneStats{}, false
			}
			stats, err := e.stats.Get(ctx, p.TenantID, p.Zone, p.PropertyType)
			if err != nil {
				e.logger.Warn("comparable statistics unavailable",
					zap.String("zone", p.Zone),
					zap.String("property_type", string(p.PropertyType)),
					zap.Error(err))
				return ZoneStats{}, false
			}
			return stats, true
		}
	}
	return []Dimension{
		budgetDimension{},
		locationDimension{},
		sizeDimension{},
		featuresDimension{},
		priceCoherenceDimension{lookup: lookup},
	}
}

func (e *Engine) scoreOne(dims []Dimension, p *domain.Property, c Criteria) (*ScoredCandidate, error) {
	if err := validateCandidate(p); err != nil {
		return nil, err
	}

	explanation := domain.MatchExplanation{}
	scores := make(map[string]float64, len(dims))
	total := 0.0
	for _, dim := range dims {
		s, reasons := dim.Compute(p, c)
		s = clamp01(s)
		scores[dim.Name()] = s
		total += e.weights.of(dim.Name()) * s
		explanation.Reasons = append(explanation.Reasons, reasons...)

		switch dim.Name() {
		case DimensionBudget:
			explanation.BudgetScore = s
		case DimensionLocation:
			explanation.LocationScore = s
		case DimensionSize:
			explanation.SizeScore = s
		case DimensionFeatures:
			explanation.FeaturesScore = s
		case DimensionPriceCoherence:
			explanation.PriceCoherenceScore = s
		}
	}

	matchScore := int(math.Round(100 * total))
	if matchScore < 0 {
		matchScore = 0
	}
	if matchScore > 100 {
		matchScore = 100
	}

	return &ScoredCandidate{
		Property:        p,
		MatchScore:      matchScore,
		Explanation:     explanation,
		ExplanationText: explanationText(matchScore, scores),
	}, nil
}

func validateCandidate(p *domain.Property) error {
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
		return fmt.Errorf("invalid price %v", p.Price)
	}
	if math.IsNaN(p.SurfaceArea) || math.IsInf(p.SurfaceArea, 0) || p.SurfaceArea < 0 {
		return fmt.Errorf("invalid surface area %v", p.SurfaceArea)
	}
	return nil
}

// dimensionOrder fixes the tie-break order when picking the strongest and
// weakest dimensions for the summary line.
var dimensionOrder = []string{
	DimensionBudget,
	DimensionLocation,
	DimensionSize,
	DimensionFeatures,
	DimensionPriceCoherence,
}

func explanationText(matchScore int, scores map[string]float64) string {
	strongest, weakest := dimensionOrder[0], dimensionOrder[0]
	for _, name := range dimensionOrder[1:] {
		if scores[name] > scores[strongest] {
			strongest = name
		}
		if scores[name] < scores[weakest] {
			weakest = name
		}
	}

	var quality string
	switch {
	case matchScore >= 80:
		quality = "Excellent match"
	case matchScore >= 60:
		quality = "Good match"
	case matchScore >= 40:
		quality = "Fair match"
	default:
		quality = "Weak match"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d/100): strongest on %s", quality, matchScore, strongest)
	if weakest != strongest {
		fmt.Fprintf(&b, ", weakest on %s", weakest)
	}
	b.WriteString(".")
	return b.String()
}
