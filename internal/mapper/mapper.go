// Package mapper converts persisted models into the API's response DTOs.
package mapper

import (
	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/matching"
)

// ContactToDTO converts a contact model to its API representation
func ContactToDTO(contact *domain.Contact) domain.ContactDTO {
	return domain.ContactDTO{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// DealToDTO converts a deal model to its API representation
func DealToDTO(deal *domain.Deal) domain.DealDTO {
	return domain.DealDTO{
		ID:              deal.ID,
		TenantID:        deal.TenantID,
		Title:           deal.Title,
		Type:            deal.Type,
		Stage:           deal.Stage,
		OwnerUserID:     deal.OwnerUserID,
		ClientContactID: deal.ClientContactID,
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
		Notes:           deal.Notes,
		CreatedAt:       deal.CreatedAt,
		UpdatedAt:       deal.UpdatedAt,
	}
}

// PropertyToDTO converts a property model to its full API representation
func PropertyToDTO(property *domain.Property) domain.PropertyDTO {
	return domain.PropertyDTO{
		ID:                property.ID,
		TenantID:          property.TenantID,
		Title:             property.Title,
		PropertyType:      property.PropertyType,
		Price:             property.Price,
		Currency:          property.Currency,
		Zone:              property.Zone,
		Region:            property.Region,
		Country:           property.Country,
		Address:           property.Address,
		SurfaceArea:       property.SurfaceArea,
		Rooms:             property.Rooms,
		Bedrooms:          property.Bedrooms,
		Status:            property.Status,
		Features:          property.Features,
		OwnerContactID:    property.OwnerContactID,
		InternalReference: property.InternalReference,
		CreatedAt:         property.CreatedAt,
		UpdatedAt:         property.UpdatedAt,
	}
}

// PropertyToSummary converts a property to the condensed shape embedded in
// match results and shortlist entries
func PropertyToSummary(property *domain.Property) domain.PropertySummaryDTO {
	return domain.PropertySummaryDTO{
		ID:                property.ID,
		Title:             property.Title,
		PropertyType:      property.PropertyType,
		Price:             property.Price,
		Currency:          property.Currency,
		Zone:              property.Zone,
		SurfaceArea:       property.SurfaceArea,
		Rooms:             property.Rooms,
		Bedrooms:          property.Bedrooms,
		Status:            property.Status,
		InternalReference: property.InternalReference,
	}
}

// ScoredCandidateToMatchResult converts one engine ranking entry to the API shape
func ScoredCandidateToMatchResult(sc matching.ScoredCandidate) domain.MatchResultDTO {
	return domain.MatchResultDTO{
		PropertyID:      sc.Property.ID,
		MatchScore:      sc.MatchScore,
		Property:        PropertyToSummary(sc.Property),
		ExplanationText: sc.ExplanationText,
		Explanation:     sc.Explanation,
	}
}

// ShortlistEntryToDTO converts a shortlist entry to its API representation
func ShortlistEntryToDTO(entry *domain.ShortlistEntry) domain.ShortlistEntryDTO {
	dto := domain.ShortlistEntryDTO{
		ID:                   entry.ID,
		DealID:               entry.DealID,
		PropertyID:           entry.PropertyID,
		MatchScore:           entry.MatchScore,
		MatchExplanation:     entry.MatchExplanation,
		SourceOwnerContactID: entry.SourceOwnerContactID,
		AddedByUserID:        entry.AddedByUserID,
		AddedAt:              entry.AddedAt,
		UpdatedAt:            entry.UpdatedAt,
	}
	if entry.Property != nil {
		summary := PropertyToSummary(entry.Property)
		dto.Property = &summary
	}
	return dto
}
