package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when the caller did not. The SQL migrations also
// set gen_random_uuid() as the server-side default.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// StringList stores a list of strings as a JSON text column so the same
// models work on both PostgreSQL and the sqlite test driver.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Tenant represents an isolated agency account; all data is scoped to exactly one tenant
type Tenant struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Slug     string `gorm:"type:varchar(100);not null;unique;index"`
	Country  string `gorm:"type:varchar(100);not null;default:'CI'"`
	IsActive bool   `gorm:"not null;default:true;column:is_active"`
}

// UserRoleType represents a role a user can have within a tenant
type UserRoleType string

const (
	RoleAdmin  UserRoleType = "admin"
	RoleAgent  UserRoleType = "agent"
	RoleViewer UserRoleType = "viewer"
)

// IsValid checks if the UserRoleType is a valid enum value
func (r UserRoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleViewer:
		return true
	}
	return false
}

// User represents a collaborator account within a tenant
type User struct {
	BaseModel
	TenantID    uuid.UUID    `gorm:"type:uuid;not null;index;column:tenant_id"`
	Tenant      *Tenant      `gorm:"foreignKey:TenantID"`
	Email       string       `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string       `gorm:"type:varchar(200);not null;column:display_name"`
	Role        UserRoleType `gorm:"type:varchar(50);not null;default:'agent'"`
	IsActive    bool         `gorm:"not null;default:true;column:is_active"`
	LastLoginAt *time.Time   `gorm:"column:last_login_at"`
}

// Contact represents an external person, typically a property owner
type Contact struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index;column:tenant_id"`
	Name     string    `gorm:"type:varchar(200);not null"`
	Email    string    `gorm:"type:varchar(255)"`
	Phone    string    `gorm:"type:varchar(50)"`
}

// DealType represents the client intent captured by a CRM deal
type DealType string

const (
	DealTypeAchat    DealType = "ACHAT"
	DealTypeLocation DealType = "LOCATION"
	DealTypeVente    DealType = "VENTE"
	DealTypeGestion  DealType = "GESTION"
	DealTypeMandat   DealType = "MANDAT"
)

// IsValid checks if the DealType is a valid enum value
func (t DealType) IsValid() bool {
	switch t {
	case DealTypeAchat, DealTypeLocation, DealTypeVente, DealTypeGestion, DealTypeMandat:
		return true
	}
	return false
}

// DealStage represents the coarse lifecycle of a deal
type DealStage string

const (
	DealStageOpen DealStage = "open"
	DealStageWon  DealStage = "won"
	DealStageLost DealStage = "lost"
)

// Deal represents a CRM record capturing a client's intent and matching criteria.
// Criteria bounds are pointers: nil means the bound was never stated and is open,
// never zero.
type Deal struct {
	BaseModel
	TenantID        uuid.UUID  `gorm:"type:uuid;not null;index;column:tenant_id"`
	Tenant          *Tenant    `gorm:"foreignKey:TenantID"`
	Title           string     `gorm:"type:varchar(200);not null"`
	Type            DealType   `gorm:"type:varchar(20);not null;index"`
	Stage           DealStage  `gorm:"type:varchar(20);not null;default:'open'"`
	OwnerUserID     uuid.UUID  `gorm:"type:uuid;not null;column:owner_user_id"`
	ClientContactID *uuid.UUID `gorm:"type:uuid;column:client_contact_id"`
	ClientContact   *Contact   `gorm:"foreignKey:ClientContactID"`
	BudgetMin       *float64   `gorm:"type:decimal(15,2);column:budget_min"`
	BudgetMax       *float64   `gorm:"type:decimal(15,2);column:budget_max"`
	Currency        string     `gorm:"type:varchar(3);not null;default:'XOF'"`
	Zones           StringList `gorm:"type:text"`
	Region          string     `gorm:"type:varchar(100)"`
	Country         string     `gorm:"type:varchar(100)"`
	MinSurface      *float64   `gorm:"type:decimal(10,2);column:min_surface"`
	MaxSurface      *float64   `gorm:"type:decimal(10,2);column:max_surface"`
	MinRooms        *int       `gorm:"column:min_rooms"`
	MinBedrooms     *int       `gorm:"column:min_bedrooms"`
	DesiredFeatures StringList `gorm:"type:text;column:desired_features"`
	Notes           string     `gorm:"type:text"`
}

// PropertyType represents the kind of property in the inventory
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeLand      PropertyType = "land"
	PropertyTypeOffice    PropertyType = "office"
	PropertyTypeRetail    PropertyType = "retail"
)

// IsValid checks if the PropertyType is a valid enum value
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla,
		PropertyTypeLand, PropertyTypeOffice, PropertyTypeRetail:
		return true
	}
	return false
}

// PropertyStatus represents the availability of a property
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusArchived  PropertyStatus = "archived"
)

// IsValid checks if the PropertyStatus is a valid enum value
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusRented,
		PropertyStatusSold, PropertyStatusArchived:
		return true
	}
	return false
}

// Property represents an inventory record owned by a tenant
type Property struct {
	BaseModel
	TenantID          uuid.UUID      `gorm:"type:uuid;not null;index;column:tenant_id"`
	Tenant            *Tenant        `gorm:"foreignKey:TenantID"`
	Title             string         `gorm:"type:varchar(200);not null"`
	PropertyType      PropertyType   `gorm:"type:varchar(30);not null;index;column:property_type"`
	Price             float64        `gorm:"type:decimal(15,2);not null"`
	Currency          string         `gorm:"type:varchar(3);not null;default:'XOF'"`
	Zone              string         `gorm:"type:varchar(100);index"`
	Region            string         `gorm:"type:varchar(100)"`
	Country           string         `gorm:"type:varchar(100)"`
	Address           string         `gorm:"type:varchar(500)"`
	SurfaceArea       float64        `gorm:"type:decimal(10,2);column:surface_area"`
	Rooms             int            `gorm:"not null;default:0"`
	Bedrooms          int            `gorm:"not null;default:0"`
	Status            PropertyStatus `gorm:"type:varchar(30);not null;default:'available';index"`
	Features          StringList     `gorm:"type:text"`
	OwnerContactID    *uuid.UUID     `gorm:"type:uuid;column:owner_contact_id"`
	OwnerContact      *Contact       `gorm:"foreignKey:OwnerContactID"`
	InternalReference string         `gorm:"type:varchar(50);not null;column:internal_reference;index"`
}

// MatchExplanation is the structured score breakdown persisted alongside a
// shortlist entry and returned by the match endpoint.
type MatchExplanation struct {
	BudgetScore         float64  `json:"budgetScore"`
	LocationScore       float64  `json:"locationScore"`
	SizeScore           float64  `json:"sizeScore"`
	FeaturesScore       float64  `json:"featuresScore"`
	PriceCoherenceScore float64  `json:"priceCoherenceScore"`
	Reasons             []string `json:"reasons"`
}

// Value implements driver.Valuer
func (e MatchExplanation) Value() (driver.Value, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (e *MatchExplanation) Scan(src interface{}) error {
	if src == nil {
		*e = MatchExplanation{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("cannot scan %T into MatchExplanation", src)
	}
}

// ShortlistEntry represents a persisted (deal, property) association.
// The (deal_id, property_id) pair is unique at the storage layer; re-adding
// the same pair updates the mutable fields instead of creating a duplicate.
type ShortlistEntry struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key"`
	TenantID             uuid.UUID        `gorm:"type:uuid;not null;index;column:tenant_id"`
	DealID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_deal_property;column:deal_id"`
	Deal                 *Deal            `gorm:"foreignKey:DealID"`
	PropertyID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_deal_property;column:property_id"`
	Property             *Property        `gorm:"foreignKey:PropertyID"`
	MatchScore           int              `gorm:"not null;default:0;column:match_score"`
	MatchExplanation     MatchExplanation `gorm:"type:text;column:match_explanation"`
	SourceOwnerContactID *uuid.UUID       `gorm:"type:uuid;column:source_owner_contact_id"`
	AddedByUserID        uuid.UUID        `gorm:"type:uuid;not null;column:added_by_user_id"`
	AddedAt              time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP;column:added_at"`
	UpdatedAt            time.Time        `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the default table name to match the migration
func (ShortlistEntry) TableName() string {
	return "deal_shortlist_entries"
}

// BeforeCreate assigns an ID when the caller did not
func (e *ShortlistEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
