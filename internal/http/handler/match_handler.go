package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/service"
)

// MatchHandler handles the deal-to-property matching endpoint
type MatchHandler struct {
	matchService *service.MatchService
	logger       *zap.Logger
}

func NewMatchHandler(matchService *service.MatchService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{matchService: matchService, logger: logger}
}

// MatchProperties godoc
// @Summary Match properties for a deal
// @Description Rank the tenant's property inventory against a deal's criteria. Read-only; nothing is persisted.
// @Tags Matching
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Param limit query int false "Maximum results" default(20) maximum(100)
// @Success 200 {object} domain.APIResponse{data=[]domain.MatchResultDTO}
// @Failure 400 {object} domain.APIResponse
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId}/properties/match [post]
func (h *MatchHandler) MatchProperties(w http.ResponseWriter, r *http.Request) {
	dealID, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	limit := matching.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondError(w, http.StatusBadRequest, "Invalid limit: must be a positive integer")
			return
		}
		if limit > matching.MaxLimit {
			limit = matching.MaxLimit
		}
	}

	results, err := h.matchService.Match(r.Context(), dealID, limit)
	if err != nil {
		h.logger.Error("matching run failed", zap.Error(err), zap.String("deal_id", dealID.String()))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}
