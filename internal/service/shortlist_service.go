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
	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/repository"
)

// ShortlistService manages the persisted (deal, property) associations.
type ShortlistService struct {
	deals      *repository.DealRepository
	properties *repository.PropertyRepository
	contacts   *repository.ContactRepository
	shortlist  *repository.ShortlistRepository
	engine     *matching.Engine
	logger     *zap.Logger
}

func NewShortlistService(
	deals *repository.DealRepository,
	properties *repository.PropertyRepository,
	contacts *repository.ContactRepository,
	shortlist *repository.ShortlistRepository,
	engine *matching.Engine,
	logger *zap.Logger,
) *ShortlistService {
	return &ShortlistService{
		deals:      deals,
		properties: properties,
		contacts:   contacts,
		shortlist:  shortlist,
		engine:     engine,
		logger:     logger,
	}
}

// Add persists a property on a deal's shortlist. Re-adding the same property
// refreshes the stored score and explanation instead of duplicating. When the
// caller does not provide a score, the entry is scored on the spot.
func (s *ShortlistService) Add(ctx context.Context, dealID uuid.UUID, req *domain.AddShortlistEntryRequest) (*domain.ShortlistEntry, error) {
	user, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	tenantID, err := repository.TenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sourceOwner := req.SourceOwnerContactID
	if sourceOwner == nil {
		sourceOwner = property.OwnerContactID
	}
	if sourceOwner != nil && req.SourceOwnerContactID != nil {
		if _, err := s.contacts.GetByID(ctx, *sourceOwner); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: source owner contact not found", ErrInvalidInput)
			}
			return nil, err
		}
	}

	entry := &domain.ShortlistEntry{
		TenantID:             tenantID,
		DealID:               deal.ID,
		PropertyID:           property.ID,
		SourceOwnerContactID: sourceOwner,
		AddedByUserID:        user.UserID,
	}

	if req.MatchScore != nil {
		entry.MatchScore = *req.MatchScore
		if req.MatchExplanation != nil {
			entry.MatchExplanation = *req.MatchExplanation
		}
	} else {
		// Manual adds without a score get scored against the deal's criteria
		ranked := s.engine.Rank(ctx, deal, []*domain.Property{property}, 1)
		if len(ranked) == 1 {
			entry.MatchScore = ranked[0].MatchScore
			entry.MatchExplanation = ranked[0].Explanation
		}
	}

	if err := s.shortlist.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("shortlist entry saved",
		zap.String("deal_id", deal.ID.String()),
		zap.String("property_id", property.ID.String()),
		zap.Int("match_score", entry.MatchScore),
		zap.String("added_by", user.UserID.String()),
	)

	stored, err := s.shortlist.GetByDealAndProperty(ctx, deal.ID, property.ID)
	if err != nil {
		return nil, err
	}
	stored.Property = property
	return stored, nil
}

// List returns a deal's shortlist, best match first.
func (s *ShortlistService) List(ctx context.Context, dealID uuid.UUID) ([]domain.ShortlistEntry, error) {
	if _, err := s.deals.GetByID(ctx, dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.shortlist.ListByDeal(ctx, dealID)
}

// Remove deletes a shortlist entry.
func (s *ShortlistService) Remove(ctx context.Context, dealID, propertyID uuid.UUID) error {
	if _, err := s.deals.GetByID(ctx, dealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	removed, err := s.shortlist.Delete(ctx, dealID, propertyID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
