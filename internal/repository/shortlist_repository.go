package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

type ShortlistRepository struct {
	db *gorm.DB
}

func NewShortlistRepository(db *gorm.DB) *ShortlistRepository {
	return &ShortlistRepository{db: db}
}

// Upsert inserts a shortlist entry or, when the (deal, property) pair already
// exists, updates its mutable fields in place. The unique index on the pair
// makes re-adding idempotent rather than an error.
func (r *ShortlistRepository) Upsert(ctx context.Context, entry *domain.ShortlistEntry) error {
	entry.UpdatedAt = time.Now().UTC()
	if entry.AddedAt.IsZero() {
		entry.AddedAt = entry.UpdatedAt
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "deal_id"}, {Name: "property_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"match_score",
				"match_explanation",
				"source_owner_contact_id",
				"added_by_user_id",
				"updated_at",
			}),
		}).
		Create(entry).Error
}

// ListByDeal returns a deal's shortlist, best match first.
func (r *ShortlistRepository) ListByDeal(ctx context.Context, dealID uuid.UUID) ([]domain.ShortlistEntry, error) {
	var entries []domain.ShortlistEntry
	query := r.db.WithContext(ctx).
		Preload("Property").
		Where("deal_id = ?", dealID)
	query = ApplyTenantFilter(ctx, query)
	err := query.Order("match_score DESC, added_at DESC").Find(&entries).Error
	return entries, err
}

// GetByDealAndProperty looks up a single shortlist entry.
func (r *ShortlistRepository) GetByDealAndProperty(ctx context.Context, dealID, propertyID uuid.UUID) (*domain.ShortlistEntry, error) {
	var entry domain.ShortlistEntry
	query := r.db.WithContext(ctx).
		Where("deal_id = ? AND property_id = ?", dealID, propertyID)
	query = ApplyTenantFilter(ctx, query)
	if err := query.First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes a shortlist entry and reports whether one existed.
func (r *ShortlistRepository) Delete(ctx context.Context, dealID, propertyID uuid.UUID) (bool, error) {
	query := ApplyTenantFilter(ctx, r.db.WithContext(ctx))
	result := query.Where("deal_id = ? AND property_id = ?", dealID, propertyID).
		Delete(&domain.ShortlistEntry{})
	return result.RowsAffected > 0, result.Error
}

// CountByDeal returns the shortlist size for a deal.
func (r *ShortlistRepository) CountByDeal(ctx context.Context, dealID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.ShortlistEntry{}).
		Where("deal_id = ?", dealID)
	query = ApplyTenantFilter(ctx, query)
	err := query.Count(&count).Error
	return count, err
}
