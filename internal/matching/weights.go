package matching

import (
	"fmt"
	"math"
)

// Weights control the relative contribution of each scoring dimension to the
// final match score. They must be non-negative and sum to 1.0.
type Weights struct {
	Budget         float64
	Location       float64
	Size           float64
	Features       float64
	PriceCoherence float64
}

// DefaultWeights returns the standard dimension weighting.
func DefaultWeights() Weights {
	return Weights{
		Budget:         0.35,
		Location:       0.25,
		Size:           0.15,
		Features:       0.15,
		PriceCoherence: 0.10,
	}
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Budget + w.Location + w.Size + w.Features + w.PriceCoherence
}

// Validate checks that the weights form a proper convex combination.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		DimensionBudget:         w.Budget,
		DimensionLocation:       w.Location,
		DimensionSize:           w.Size,
		DimensionFeatures:       w.Features,
		DimensionPriceCoherence: w.PriceCoherence,
	} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("weight %q must be non-negative, got %v", name, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %v", w.Sum())
	}
	return nil
}

// of returns the weight for a dimension by name.
func (w Weights) of(name string) float64 {
	switch name {
	case DimensionBudget:
		return w.Budget
	case DimensionLocation:
		return w.Location
	case DimensionSize:
		return w.Size
	case DimensionFeatures:
		return w.Features
	case DimensionPriceCoherence:
		return w.PriceCoherence
	}
	return 0
}
