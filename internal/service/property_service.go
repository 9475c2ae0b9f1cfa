package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/repository"
)

// PropertyService manages the tenant's property inventory.
type PropertyService struct {
	properties *repository.PropertyRepository
	contacts   *repository.ContactRepository
	logger     *zap.Logger
}

func NewPropertyService(properties *repository.PropertyRepository, contacts *repository.ContactRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{properties: properties, contacts: contacts, logger: logger}
}

// generateReference builds an internal reference for listings created without
// one. References are informational, not a uniqueness guarantee.
func generateReference() string {
	return fmt.Sprintf("AKW-%s-%d", strings.ToUpper(uuid.NewString()[:8]), time.Now().Year())
}

func (s *PropertyService) Create(ctx context.Context, req *domain.CreatePropertyRequest) (*domain.Property, error) {
	tenantID, err := repository.TenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.OwnerContactID != nil {
		if _, err := s.contacts.GetByID(ctx, *req.OwnerContactID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: owner contact not found", ErrInvalidInput)
			}
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = domain.PropertyStatusAvailable
	}
	currency := req.Currency
	if currency == "" {
		currency = "XOF"
	}
	reference := strings.TrimSpace(req.InternalReference)
	if reference == "" {
		reference = generateReference()
	}

	property := &domain.Property{
		TenantID:          tenantID,
		Title:             req.Title,
		PropertyType:      req.PropertyType,
		Price:             req.Price,
		Currency:          currency,
		Zone:              req.Zone,
		Region:            req.Region,
		Country:           req.Country,
		Address:           req.Address,
		SurfaceArea:       req.SurfaceArea,
		Rooms:             req.Rooms,
		Bedrooms:          req.Bedrooms,
		Status:            status,
		Features:          domain.StringList(req.Features),
		OwnerContactID:    req.OwnerContactID,
		InternalReference: reference,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created",
		zap.String("property_id", property.ID.String()),
		zap.String("reference", property.InternalReference),
		zap.String("zone", property.Zone),
	)
	return property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	property.Title = req.Title
	property.Price = req.Price
	property.Zone = req.Zone
	property.Region = req.Region
	property.Country = req.Country
	property.Address = req.Address
	property.SurfaceArea = req.SurfaceArea
	property.Rooms = req.Rooms
	property.Bedrooms = req.Bedrooms
	if req.Status != "" {
		property.Status = req.Status
	}
	property.Features = domain.StringList(req.Features)

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) List(ctx context.Context, page, pageSize int, filters *repository.PropertyFilters) ([]domain.Property, int64, error) {
	return s.properties.List(ctx, page, pageSize, filters)
}
