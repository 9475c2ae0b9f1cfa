package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

// Dimension names, in the order they contribute to the explanation.
const (
	DimensionBudget         = "budget"
	DimensionLocation       = "location"
	DimensionSize           = "size"
	DimensionFeatures       = "features"
	DimensionPriceCoherence = "priceCoherence"
)

// Dimension scores one aspect of a candidate property against the deal
// criteria. Scores are in [0, 1]; 0.5 is the neutral value when the criteria
// say nothing about the aspect.
type Dimension interface {
	Name() string
	Compute(p *domain.Property, c Criteria) (float64, []string)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// budgetDimension scores the price against the stated budget band. Prices
// inside the band score 1.0 and decay linearly to 0 across a tolerance window
// on both sides: a price far under budget usually signals a different market
// segment, not a bargain.
type budgetDimension struct{}

func (budgetDimension) Name() string { return DimensionBudget }

func (budgetDimension) Compute(p *domain.Property, c Criteria) (float64, []string) {
	if !c.HasBudget() {
		return 0.5, []string{"no budget stated"}
	}

	lo := 0.0
	hi := math.Inf(1)
	if c.BudgetMin != nil {
		lo = *c.BudgetMin
	}
	if c.BudgetMax != nil {
		hi = *c.BudgetMax
	}

	// Tolerance is 20% of the band width; a single-point or half-open band
	// uses 10% of the stated bound instead.
	var tol float64
	switch {
	case c.BudgetMin != nil && c.BudgetMax != nil && hi > lo:
		tol = 0.2 * (hi - lo)
	case c.BudgetMax != nil:
		tol = 0.1 * hi
	default:
		tol = 0.1 * lo
	}
	if tol <= 0 {
		return 0.5, []string{"budget band too narrow to score"}
	}

	if p.Price >= lo && p.Price <= hi {
		return 1.0, []string{"price within budget"}
	}

	var distance float64
	var reason string
	if p.Price > hi {
		distance = p.Price - hi
		reason = fmt.Sprintf("price %.0f%% over budget", 100*distance/hi)
	} else {
		distance = lo - p.Price
		reason = fmt.Sprintf("price %.0f%% under budget", 100*distance/lo)
	}
	return clamp01(1 - distance/tol), []string{reason}
}

// locationDimension scores geographic fit in tiers: exact zone, then region,
// then country. A stated country that disagrees scores zero.
type locationDimension struct{}

func (locationDimension) Name() string { return DimensionLocation }

func (locationDimension) Compute(p *domain.Property, c Criteria) (float64, []string) {
	if !c.HasLocation() {
		return 0.5, []string{"no location preference stated"}
	}

	for _, zone := range c.Zones {
		if zone != "" && strings.EqualFold(zone, p.Zone) {
			return 1.0, []string{fmt.Sprintf("located in requested zone %s", p.Zone)}
		}
	}
	if c.Region != "" && strings.EqualFold(c.Region, p.Region) {
		return 0.6, []string{fmt.Sprintf("located in requested region %s", p.Region)}
	}
	if c.Country != "" && p.Country != "" && !strings.EqualFold(c.Country, p.Country) {
		return 0.0, []string{"located in a different country"}
	}
	if c.Country != "" && strings.EqualFold(c.Country, p.Country) {
		return 0.3, []string{"only the country matches"}
	}
	return 0.0, []string{"outside the requested zones"}
}

// sizeDimension grants partial credit: each missing room or bedroom costs
// 0.25, a surface shortfall costs up to 0.5 proportionally.
type sizeDimension struct{}

func (sizeDimension) Name() string { return DimensionSize }

func (sizeDimension) Compute(p *domain.Property, c Criteria) (float64, []string) {
	if !c.HasSize() {
		return 0.5, []string{"no size criteria stated"}
	}

	score := 1.0
	var reasons []string

	if c.MinRooms != nil && p.Rooms < *c.MinRooms {
		missing := *c.MinRooms - p.Rooms
		score -= 0.25 * float64(missing)
		reasons = append(reasons, fmt.Sprintf("%d room(s) below the requested minimum", missing))
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		missing := *c.MinBedrooms - p.Bedrooms
		score -= 0.25 * float64(missing)
		reasons = append(reasons, fmt.Sprintf("%d bedroom(s) below the requested minimum", missing))
	}
	if c.MinSurface != nil && *c.MinSurface > 0 && p.SurfaceArea < *c.MinSurface {
		if p.SurfaceArea <= 0 {
			score -= 0.5
			reasons = append(reasons, "surface area not recorded")
		} else {
			score -= 0.5 * (1 - p.SurfaceArea / *c.MinSurface)
			reasons = append(reasons, fmt.Sprintf("surface %.0f m² below the requested %.0f m²", p.SurfaceArea, *c.MinSurface))
		}
	}
	if c.MaxSurface != nil && *c.MaxSurface > 0 && p.SurfaceArea > *c.MaxSurface {
		over := (p.SurfaceArea - *c.MaxSurface) / *c.MaxSurface
		score -= 0.25 * math.Min(over, 1)
		reasons = append(reasons, fmt.Sprintf("surface %.0f m² above the requested maximum", p.SurfaceArea))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "meets all size criteria")
	}
	return clamp01(score), reasons
}

// featuresDimension is the case-insensitive overlap ratio between desired and
// present features. Nothing desired means nothing to penalize.
type featuresDimension struct{}

func (featuresDimension) Name() string { return DimensionFeatures }

func (featuresDimension) Compute(p *domain.Property, c Criteria) (float64, []string) {
	if len(c.DesiredFeatures) == 0 {
		return 1.0, []string{"no specific features requested"}
	}

	have := make(map[string]bool, len(p.Features))
	for _, f := range p.Features {
		have[strings.ToLower(strings.TrimSpace(f))] = true
	}

	matched := 0
	var missing []string
	for _, want := range c.DesiredFeatures {
		if have[strings.ToLower(strings.TrimSpace(want))] {
			matched++
		} else {
			missing = append(missing, want)
		}
	}

	score := float64(matched) / float64(len(c.DesiredFeatures))
	if len(missing) == 0 {
		return score, []string{"has all requested features"}
	}
	return score, []string{fmt.Sprintf("missing features: %s", strings.Join(missing, ", "))}
}

// StatsLookup resolves comparable statistics for a candidate's segment.
// Returning false means no usable reference exists.
type StatsLookup func(p *domain.Property) (ZoneStats, bool)

// priceCoherenceDimension compares the candidate's price per m² against the
// average of comparable listings in the same tenant, zone and property type.
// Raw price is the fallback when surface is unrecorded.
type priceCoherenceDimension struct {
	lookup StatsLookup
}

func (priceCoherenceDimension) Name() string { return DimensionPriceCoherence }

func (d priceCoherenceDimension) Compute(p *domain.Property, c Criteria) (float64, []string) {
	if d.lookup == nil {
		return 0.5, []string{"no comparable listings available"}
	}
	stats, ok := d.lookup(p)
	if !ok || stats.Count < minComparablePopulation {
		return 0.5, []string{"no comparable listings available"}
	}

	var ratio float64
	switch {
	case p.SurfaceArea > 0 && stats.AvgPricePerSqm > 0:
		ratio = (p.Price / p.SurfaceArea) / stats.AvgPricePerSqm
	case stats.AvgPrice > 0:
		ratio = p.Price / stats.AvgPrice
	default:
		return 0.5, []string{"no comparable listings available"}
	}

	score := clamp01(1 - math.Abs(ratio-1)/0.5)
	deviation := 100 * (ratio - 1)
	var reason string
	switch {
	case deviation > 5:
		reason = fmt.Sprintf("priced %.0f%% above comparable listings", deviation)
	case deviation < -5:
		reason = fmt.Sprintf("priced %.0f%% below comparable listings", -deviation)
	default:
		reason = "priced in line with comparable listings"
	}
	return score, []string{reason}
}
