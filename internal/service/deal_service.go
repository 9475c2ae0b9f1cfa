package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/repository"
)

// DealService manages CRM deals and their matching criteria.
type DealService struct {
	deals    *repository.DealRepository
	contacts *repository.ContactRepository
	logger   *zap.Logger
}

func NewDealService(deals *repository.DealRepository, contacts *repository.ContactRepository, logger *zap.Logger) *DealService {
	return &DealService{deals: deals, contacts: contacts, logger: logger}
}

// validateCriteriaBounds rejects inverted ranges. Open bounds (nil) are fine.
func validateCriteriaBounds(budgetMin, budgetMax, minSurface, maxSurface *float64) error {
	if budgetMin != nil && budgetMax != nil && *budgetMin > *budgetMax {
		return fmt.Errorf("%w: budgetMin must not exceed budgetMax", ErrInvalidInput)
	}
	if minSurface != nil && maxSurface != nil && *minSurface > *maxSurface {
		return fmt.Errorf("%w: minSurface must not exceed maxSurface", ErrInvalidInput)
	}
	return nil
}

func (s *DealService) resolveClientContact(ctx context.Context, contactID *uuid.UUID) error {
	if contactID == nil {
		return nil
	}
	if _, err := s.contacts.GetByID(ctx, *contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: client contact not found", ErrInvalidInput)
		}
		return err
	}
	return nil
}

func (s *DealService) Create(ctx context.Context, req *domain.CreateDealRequest) (*domain.Deal, error) {
	user, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	tenantID, err := repository.TenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateCriteriaBounds(req.BudgetMin, req.BudgetMax, req.MinSurface, req.MaxSurface); err != nil {
		return nil, err
	}
	if err := s.resolveClientContact(ctx, req.ClientContactID); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "XOF"
	}

	deal := &domain.Deal{
		TenantID:        tenantID,
		Title:           req.Title,
		Type:            req.Type,
		Stage:           domain.DealStageOpen,
		OwnerUserID:     user.UserID,
		ClientContactID: req.ClientContactID,
		BudgetMin:       req.BudgetMin,
		BudgetMax:       req.BudgetMax,
		Currency:        currency,
		Zones:           domain.StringList(req.Zones),
		Region:          req.Region,
		Country:         req.Country,
		MinSurface:      req.MinSurface,
		MaxSurface:      req.MaxSurface,
		MinRooms:        req.MinRooms,
		MinBedrooms:     req.MinBedrooms,
		DesiredFeatures: domain.StringList(req.DesiredFeatures),
		Notes:           req.Notes,
	}

	if err := s.deals.Create(ctx, deal); err != nil {
		return nil, err
	}

	s.logger.Info("deal created",
		zap.String("deal_id", deal.ID.String()),
		zap.String("type", string(deal.Type)),
		zap.String("owner", user.UserID.String()),
	)
	return deal, nil
}

func (s *DealService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	deal, err := s.deals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return deal, nil
}

func (s *DealService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDealRequest) (*domain.Deal, error) {
	deal, err := s.deals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := validateCriteriaBounds(req.BudgetMin, req.BudgetMax, req.MinSurface, req.MaxSurface); err != nil {
		return nil, err
	}
	if err := s.resolveClientContact(ctx, req.ClientContactID); err != nil {
		return nil, err
	}

	deal.Title = req.Title
	if req.Stage != "" {
		deal.Stage = req.Stage
	}
	deal.ClientContactID = req.ClientContactID
	deal.BudgetMin = req.BudgetMin
	deal.BudgetMax = req.BudgetMax
	if req.Currency != "" {
		deal.Currency = req.Currency
	}
	deal.Zones = domain.StringList(req.Zones)
	deal.Region = req.Region
	deal.Country = req.Country
	deal.MinSurface = req.MinSurface
	deal.MaxSurface = req.MaxSurface
	deal.MinRooms = req.MinRooms
	deal.MinBedrooms = req.MinBedrooms
	deal.DesiredFeatures = domain.StringList(req.DesiredFeatures)
	deal.Notes = req.Notes

	if err := s.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DealService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.deals.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.deals.Delete(ctx, id)
}

func (s *DealService) List(ctx context.Context, page, pageSize int, filters *repository.DealFilters) ([]domain.Deal, int64, error) {
	return s.deals.List(ctx, page, pageSize, filters)
}
