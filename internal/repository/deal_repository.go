package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akwaba-immo/operations-api/internal/domain"
)

// DealFilters contains filter options for listing deals
type DealFilters struct {
	Stage       *domain.DealStage
	Type        *domain.DealType
	OwnerUserID *uuid.UUID
	SearchQuery *string
}

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	// Omit associations to avoid GORM trying to validate related records
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(deal).Error
}

func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	var deal domain.Deal
	query := r.db.WithContext(ctx).
		Preload("ClientContact").
		Where("id = ?", id)
	query = ApplyTenantFilter(ctx, query)
	if err := query.First(&deal).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(deal).Error
}

func (r *DealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := ApplyTenantFilter(ctx, r.db.WithContext(ctx))
	return query.Delete(&domain.Deal{}, "id = ?", id).Error
}

func (r *DealRepository) List(ctx context.Context, page, pageSize int, filters *DealFilters) ([]domain.Deal, int64, error) {
	var deals []domain.Deal
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Deal{})
	query = ApplyTenantFilter(ctx, query)
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&deals).Error
	return deals, total, err
}

func (r *DealRepository) applyFilters(query *gorm.DB, filters *DealFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Stage != nil {
		query = query.Where("stage = ?", *filters.Stage)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.OwnerUserID != nil {
		query = query.Where("owner_user_id = ?", *filters.OwnerUserID)
	}
	if filters.SearchQuery != nil && *filters.SearchQuery != "" {
		searchPattern := "%" + strings.ToLower(*filters.SearchQuery) + "%"
		query = query.Where("LOWER(title) LIKE ?", searchPattern)
	}

	return query
}
