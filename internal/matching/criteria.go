package matching

import (
	"github.com/akwaba-immo/operations-api/internal/domain"
)

// Criteria is the ephemeral matching input extracted from a deal.
// It is never persisted. Nil bounds mean the client left them open,
// which is different from a stated zero.
type Criteria struct {
	DealType        domain.DealType
	BudgetMin       *float64
	BudgetMax       *float64
	Currency        string
	Zones           []string
	Region          string
	Country         string
	MinSurface      *float64
	MaxSurface      *float64
	MinRooms        *int
	MinBedrooms     *int
	DesiredFeatures []string
}

// ExtractCriteria pulls the matching-relevant fields out of a deal.
func ExtractCriteria(deal *domain.Deal) Criteria {
	return Criteria{
		DealType:        deal.Type,
		BudgetMin:       deal.BudgetMin,
		BudgetMax:       deal.BudgetMax,
		Currency:        deal.Currency,
		Zones:           deal.Zones,
		Region:          deal.Region,
		Country:         deal.Country,
		MinSurface:      deal.MinSurface,
		MaxSurface:      deal.MaxSurface,
		MinRooms:        deal.MinRooms,
		MinBedrooms:     deal.MinBedrooms,
		DesiredFeatures: deal.DesiredFeatures,
	}
}

// HasBudget reports whether at least one budget bound was stated.
func (c Criteria) HasBudget() bool {
	return c.BudgetMin != nil || c.BudgetMax != nil
}

// HasSize reports whether any size criterion was stated.
func (c Criteria) HasSize() bool {
	return c.MinSurface != nil || c.MaxSurface != nil || c.MinRooms != nil || c.MinBedrooms != nil
}

// HasLocation reports whether any location criterion was stated.
func (c Criteria) HasLocation() bool {
	return len(c.Zones) > 0 || c.Region != "" || c.Country != ""
}
