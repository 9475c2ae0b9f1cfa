package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/mapper"
	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/repository"
)

// MatchService runs the deal-to-property matching flow: load the deal, select
// candidates, rank them and shape the response. It never writes anything.
type MatchService struct {
	deals      *repository.DealRepository
	properties *repository.PropertyRepository
	engine     *matching.Engine
	logger     *zap.Logger
}

func NewMatchService(
	deals *repository.DealRepository,
	properties *repository.PropertyRepository,
	engine *matching.Engine,
	logger *zap.Logger,
) *MatchService {
	return &MatchService{
		deals:      deals,
		properties: properties,
		engine:     engine,
		logger:     logger,
	}
}

// Match returns the ranked matches for a deal. An unknown or cross-tenant
// deal is ErrNotFound; an empty candidate set is a successful empty result.
func (s *MatchService) Match(ctx context.Context, dealID uuid.UUID, limit int) ([]domain.MatchResultDTO, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	candidates, err := s.properties.ListCandidates(ctx, matching.ExtractCriteria(deal))
	if err != nil {
		return nil, err
	}

	results := make([]domain.MatchResultDTO, 0, limit)
	if len(candidates) == 0 {
		s.logger.Info("no matching candidates for deal",
			zap.String("deal_id", dealID.String()),
			zap.String("deal_type", string(deal.Type)),
		)
		return results, nil
	}

	ranked := s.engine.Rank(ctx, deal, candidates, limit)
	for _, sc := range ranked {
		results = append(results, mapper.ScoredCandidateToMatchResult(sc))
	}

	s.logger.Debug("matching run completed",
		zap.String("deal_id", dealID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(results)),
	)
	return results, nil
}
