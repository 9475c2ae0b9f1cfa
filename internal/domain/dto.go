package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaginatedResponse wraps a page of results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// CreateContactRequest is the payload for creating a contact
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

// ContactDTO is the API representation of a contact
type ContactDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDealRequest is the payload for creating a CRM deal
type CreateDealRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Type            DealType `json:"type" validate:"required,oneof=ACHAT LOCATION VENTE GESTION MANDAT"`
	ClientContactID *uuid.UUID `json:"clientContactId,omitempty"`
	BudgetMin       *float64 `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax       *float64 `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Currency        string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Zones           []string `json:"zones,omitempty"`
	Region          string   `json:"region,omitempty" validate:"omitempty,max=100"`
	Country         string   `json:"country,omitempty" validate:"omitempty,max=100"`
	MinSurface      *float64 `json:"minSurface,omitempty" validate:"omitempty,gte=0"`
	MaxSurface      *float64 `json:"maxSurface,omitempty" validate:"omitempty,gte=0"`
	MinRooms        *int     `json:"minRooms,omitempty" validate:"omitempty,gte=0"`
	MinBedrooms     *int     `json:"minBedrooms,omitempty" validate:"omitempty,gte=0"`
	DesiredFeatures []string `json:"desiredFeatures,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// UpdateDealRequest is the payload for updating a CRM deal
type UpdateDealRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Stage           DealStage  `json:"stage,omitempty" validate:"omitempty,oneof=open won lost"`
	ClientContactID *uuid.UUID `json:"clientContactId,omitempty"`
	BudgetMin       *float64   `json:"budgetMin,omitempty" validate:"omitempty,gte=0"`
	BudgetMax       *float64   `json:"budgetMax,omitempty" validate:"omitempty,gte=0"`
	Currency        string     `json:"currency,omitempty" validate:"omitempty,len=3"`
	Zones           []string   `json:"zones,omitempty"`
	Region          string     `json:"region,omitempty" validate:"omitempty,max=100"`
	Country         string     `json:"country,omitempty" validate:"omitempty,max=100"`
	MinSurface      *float64   `json:"minSurface,omitempty" validate:"omitempty,gte=0"`
	MaxSurface      *float64   `json:"maxSurface,omitempty" validate:"omitempty,gte=0"`
	MinRooms        *int       `json:"minRooms,omitempty" validate:"omitempty,gte=0"`
	MinBedrooms     *int       `json:"minBedrooms,omitempty" validate:"omitempty,gte=0"`
	DesiredFeatures []string   `json:"desiredFeatures,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// DealDTO is the API representation of a deal
type DealDTO struct {
	ID              uuid.UUID  `json:"id"`
	TenantID        uuid.UUID  `json:"tenantId"`
	Title           string     `json:"title"`
	Type            DealType   `json:"type"`
	Stage           DealStage  `json:"stage"`
	OwnerUserID     uuid.UUID  `json:"ownerUserId"`
	ClientContactID *uuid.UUID `json:"clientContactId,omitempty"`
	BudgetMin       *float64   `json:"budgetMin,omitempty"`
	BudgetMax       *float64   `json:"budgetMax,omitempty"`
	Currency        string     `json:"currency"`
	Zones           []string   `json:"zones,omitempty"`
	Region          string     `json:"region,omitempty"`
	Country         string     `json:"country,omitempty"`
	MinSurface      *float64   `json:"minSurface,omitempty"`
	MaxSurface      *float64   `json:"maxSurface,omitempty"`
	MinRooms        *int       `json:"minRooms,omitempty"`
	MinBedrooms     *int       `json:"minBedrooms,omitempty"`
	DesiredFeatures []string   `json:"desiredFeatures,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CreatePropertyRequest is the payload for adding a property to the inventory
type CreatePropertyRequest struct {
	Title             string       `json:"title" validate:"required,max=200"`
	PropertyType      PropertyType `json:"propertyType" validate:"required,oneof=apartment house villa land office retail"`
	Price             float64      `json:"price" validate:"required,gt=0"`
	Currency          string       `json:"currency,omitempty" validate:"omitempty,len=3"`
	Zone              string       `json:"zone,omitempty" validate:"omitempty,max=100"`
	Region            string       `json:"region,omitempty" validate:"omitempty,max=100"`
	Country           string       `json:"country,omitempty" validate:"omitempty,max=100"`
	Address           string       `json:"address,omitempty" validate:"omitempty,max=500"`
	SurfaceArea       float64      `json:"surfaceArea,omitempty" validate:"omitempty,gte=0"`
	Rooms             int          `json:"rooms,omitempty" validate:"omitempty,gte=0"`
	Bedrooms          int          `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Status            PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=available reserved rented sold archived"`
	Features          []string     `json:"features,omitempty"`
	OwnerContactID    *uuid.UUID   `json:"ownerContactId,omitempty"`
	InternalReference string       `json:"internalReference,omitempty" validate:"omitempty,max=50"`
}

// UpdatePropertyRequest is the payload for updating a property
type UpdatePropertyRequest struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	Zone        string         `json:"zone,omitempty" validate:"omitempty,max=100"`
	Region      string         `json:"region,omitempty" validate:"omitempty,max=100"`
	Country     string         `json:"country,omitempty" validate:"omitempty,max=100"`
	Address     string         `json:"address,omitempty" validate:"omitempty,max=500"`
	SurfaceArea float64        `json:"surfaceArea,omitempty" validate:"omitempty,gte=0"`
	Rooms       int            `json:"rooms,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    int            `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Status      PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=available reserved rented sold archived"`
	Features    []string       `json:"features,omitempty"`
}

// PropertyDTO is the full API representation of a property
type PropertyDTO struct {
	ID                uuid.UUID      `json:"id"`
	TenantID          uuid.UUID      `json:"tenantId"`
	Title             string         `json:"title"`
	PropertyType      PropertyType   `json:"propertyType"`
	Price             float64        `json:"price"`
	Currency          string         `json:"currency"`
	Zone              string         `json:"zone,omitempty"`
	Region            string         `json:"region,omitempty"`
	Country           string         `json:"country,omitempty"`
	Address           string         `json:"address,omitempty"`
	SurfaceArea       float64        `json:"surfaceArea,omitempty"`
	Rooms             int            `json:"rooms,omitempty"`
	Bedrooms          int            `json:"bedrooms,omitempty"`
	Status            PropertyStatus `json:"status"`
	Features          []string       `json:"features,omitempty"`
	OwnerContactID    *uuid.UUID     `json:"ownerContactId,omitempty"`
	InternalReference string         `json:"internalReference"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// PropertySummaryDTO is the condensed property shape embedded in match results
type PropertySummaryDTO struct {
	ID                uuid.UUID      `json:"id"`
	Title             string         `json:"title"`
	PropertyType      PropertyType   `json:"propertyType"`
	Price             float64        `json:"price"`
	Currency          string         `json:"currency"`
	Zone              string         `json:"zone,omitempty"`
	SurfaceArea       float64        `json:"surfaceArea,omitempty"`
	Rooms             int            `json:"rooms,omitempty"`
	Bedrooms          int            `json:"bedrooms,omitempty"`
	Status            PropertyStatus `json:"status"`
	InternalReference string         `json:"internalReference"`
}

// MatchResultDTO is one ranked entry returned by the match endpoint
type MatchResultDTO struct {
	PropertyID      uuid.UUID          `json:"propertyId"`
	MatchScore      int                `json:"matchScore"`
	Property        PropertySummaryDTO `json:"property"`
	ExplanationText string             `json:"explanationText"`
	Explanation     MatchExplanation   `json:"explanation"`
}

// AddShortlistEntryRequest is the payload for persisting a (deal, property) association
type AddShortlistEntryRequest struct {
	PropertyID           uuid.UUID         `json:"propertyId" validate:"required"`
	MatchScore           *int              `json:"matchScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	MatchExplanation     *MatchExplanation `json:"matchExplanation,omitempty"`
	SourceOwnerContactID *uuid.UUID        `json:"sourceOwnerContactId,omitempty"`
}

// ShortlistEntryDTO is the API representation of a shortlist entry
type ShortlistEntryDTO struct {
	ID                   uuid.UUID           `json:"id"`
	DealID               uuid.UUID           `json:"dealId"`
	PropertyID           uuid.UUID           `json:"propertyId"`
	MatchScore           int                 `json:"matchScore"`
	MatchExplanation     MatchExplanation    `json:"matchExplanation"`
	SourceOwnerContactID *uuid.UUID          `json:"sourceOwnerContactId,omitempty"`
	AddedByUserID        uuid.UUID           `json:"addedByUserId"`
	AddedAt              time.Time           `json:"addedAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
	Property             *PropertySummaryDTO `json:"property,omitempty"`
}
