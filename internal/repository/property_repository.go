package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/matching"
)

// candidateCap bounds how many properties a single matching run considers.
// The newest listings win when a tenant's eligible inventory exceeds it.
const candidateCap = 500

// PropertyFilters contains filter options for listing properties
type PropertyFilters struct {
	Status       *domain.PropertyStatus
	PropertyType *domain.PropertyType
	Zone         *string
	MinPrice     *float64
	MaxPrice     *float64
	SearchQuery  *string
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(property).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	var property domain.Property
	query := r.db.WithContext(ctx).
		Preload("OwnerContact").
		Where("id = ?", id)
	query = ApplyTenantFilter(ctx, query)
	if err := query.First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(property).Error
}

func (r *PropertyRepository) List(ctx context.Context, page, pageSize int, filters *PropertyFilters) ([]domain.Property, int64, error) {
	var properties []domain.Property
	var total int64

	page, pageSize = NormalizePage(page, pageSize)

	query := r.db.WithContext(ctx).Model(&domain.Property{})
	query = ApplyTenantFilter(ctx, query)
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&properties).Error
	return properties, total, err
}

// eligibleStatuses returns the property statuses a deal type may match.
// Management mandates can also take over properties that are currently rented.
func eligibleStatuses(dealType domain.DealType) []domain.PropertyStatus {
	if dealType == domain.DealTypeGestion {
		return []domain.PropertyStatus{
			domain.PropertyStatusAvailable,
			domain.PropertyStatusReserved,
			domain.PropertyStatusRented,
		}
	}
	return []domain.PropertyStatus{
		domain.PropertyStatusAvailable,
		domain.PropertyStatusReserved,
	}
}

// ListCandidates returns the tenant's properties worth scoring against a deal.
// It applies the eligible-status set for the deal type and a coarse price band
// (half of budgetMin to double budgetMax) so the fine-grained scoring happens
// in memory on a bounded set. Results are ordered by id so a matching run is
// reproducible. Read-only, no side effects.
func (r *PropertyRepository) ListCandidates(ctx context.Context, criteria matching.Criteria) ([]*domain.Property, error) {
	query := r.db.WithContext(ctx).Model(&domain.Property{})
	query = ApplyTenantFilter(ctx, query)
	query = query.Where("status IN ?", eligibleStatuses(criteria.DealType))

	if criteria.BudgetMin != nil {
		query = query.Where("price >= ?", 0.5**criteria.BudgetMin)
	}
	if criteria.BudgetMax != nil {
		query = query.Where("price <= ?", 2**criteria.BudgetMax)
	}

	var properties []*domain.Property
	if err := query.Order("created_at DESC, id").Limit(candidateCap).Find(&properties).Error; err != nil {
		return nil, err
	}

	sort.Slice(properties, func(i, j int) bool {
		return properties[i].ID.String() < properties[j].ID.String()
	})
	return properties, nil
}

// ComparableStats aggregates the tenant's comparable listings for one
// zone+type segment. It backs the price-coherence dimension through the
// matching stats cache.
func (r *PropertyRepository) ComparableStats(ctx context.Context, tenantID uuid.UUID, zone string, propertyType domain.PropertyType) (matching.ZoneStats, error) {
	statuses := []domain.PropertyStatus{
		domain.PropertyStatusAvailable,
		domain.PropertyStatusReserved,
		domain.PropertyStatusRented,
	}

	base := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("tenant_id = ?", tenantID).
		Where("LOWER(zone) = ?", strings.ToLower(strings.TrimSpace(zone))).
		Where("property_type = ?", propertyType).
		Where("status IN ?", statuses).
		Where("price > 0")

	var overall struct {
		Count    int64
		AvgPrice float64
	}
	if err := base.Session(&gorm.Session{}).
		Select("COUNT(*) as count, COALESCE(AVG(price), 0) as avg_price").
		Scan(&overall).Error; err != nil {
		return matching.ZoneStats{}, err
	}

	var perSqm struct {
		AvgPricePerSqm float64
	}
	if err := base.Session(&gorm.Session{}).
		Where("surface_area > 0").
		Select("COALESCE(AVG(price / surface_area), 0) as avg_price_per_sqm").
		Scan(&perSqm).Error; err != nil {
		return matching.ZoneStats{}, err
	}

	return matching.ZoneStats{
		Count:          int(overall.Count),
		AvgPrice:       overall.AvgPrice,
		AvgPricePerSqm: perSqm.AvgPricePerSqm,
	}, nil
}

// ActiveSegments lists the distinct tenant+zone+type segments that currently
// have eligible inventory. The stats refresh job warms these.
func (r *PropertyRepository) ActiveSegments(ctx context.Context) ([]matching.Segment, error) {
	var segments []matching.Segment
	err := r.db.WithContext(ctx).Model(&domain.Property{}).
		Where("status IN ?", []domain.PropertyStatus{
			domain.PropertyStatusAvailable,
			domain.PropertyStatusReserved,
			domain.PropertyStatusRented,
		}).
		Where("zone <> ''").
		Select("tenant_id, zone, property_type").
		Group("tenant_id, zone, property_type").
		Scan(&segments).Error
	return segments, err
}

func (r *PropertyRepository) applyFilters(query *gorm.DB, filters *PropertyFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.PropertyType != nil {
		query = query.Where("property_type = ?", *filters.PropertyType)
	}
	if filters.Zone != nil && *filters.Zone != "" {
		query = query.Where("LOWER(zone) = ?", strings.ToLower(*filters.Zone))
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.SearchQuery != nil && *filters.SearchQuery != "" {
		searchPattern := "%" + strings.ToLower(*filters.SearchQuery) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(internal_reference) LIKE ?", searchPattern, searchPattern)
	}

	return query
}
