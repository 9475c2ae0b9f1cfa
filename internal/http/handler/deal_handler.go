package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/mapper"
	"github.com/akwaba-immo/operations-api/internal/repository"
	"github.com/akwaba-immo/operations-api/internal/service"
)

// DealHandler handles HTTP requests for CRM deals
type DealHandler struct {
	dealService *service.DealService
	logger      *zap.Logger
}

func NewDealHandler(dealService *service.DealService, logger *zap.Logger) *DealHandler {
	return &DealHandler{dealService: dealService, logger: logger}
}

// ListDeals godoc
// @Summary List deals
// @Description Get paginated list of the tenant's CRM deals
// @Tags Deals
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param stage query string false "Filter by stage" Enums(open, won, lost)
// @Param type query string false "Filter by deal type" Enums(ACHAT, LOCATION, VENTE, GESTION, MANDAT)
// @Param search query string false "Search by title"
// @Success 200 {object} domain.APIResponse{data=domain.PaginatedResponse}
// @Failure 400 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals [get]
func (h *DealHandler) ListDeals(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.DealFilters{}
	if stage := r.URL.Query().Get("stage"); stage != "" {
		s := domain.DealStage(stage)
		if s != domain.DealStageOpen && s != domain.DealStageWon && s != domain.DealStageLost {
			respondError(w, http.StatusBadRequest, "Invalid stage: must be one of open, won, lost")
			return
		}
		filters.Stage = &s
	}
	if dealType := r.URL.Query().Get("type"); dealType != "" {
		dt := domain.DealType(dealType)
		if !dt.IsValid() {
			respondError(w, http.StatusBadRequest, "Invalid type: must be one of ACHAT, LOCATION, VENTE, GESTION, MANDAT")
			return
		}
		filters.Type = &dt
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filters.SearchQuery = &search
	}

	deals, total, err := h.dealService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list deals", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	dtos := make([]domain.DealDTO, 0, len(deals))
	for i := range deals {
		dtos = append(dtos, mapper.DealToDTO(&deals[i]))
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// GetDeal godoc
// @Summary Get deal
// @Description Get a deal by ID
// @Tags Deals
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Success 200 {object} domain.APIResponse{data=domain.DealDTO}
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId} [get]
func (h *DealHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	deal, err := h.dealService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.DealToDTO(deal))
}

// CreateDeal godoc
// @Summary Create deal
// @Description Create a CRM deal with matching criteria
// @Tags Deals
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param request body domain.CreateDealRequest true "Deal data"
// @Success 201 {object} domain.APIResponse{data=domain.DealDTO}
// @Failure 400 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals [post]
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	deal, err := h.dealService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create deal", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapper.DealToDTO(deal))
}

// UpdateDeal godoc
// @Summary Update deal
// @Description Update an existing deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Param request body domain.UpdateDealRequest true "Deal data"
// @Success 200 {object} domain.APIResponse{data=domain.DealDTO}
// @Failure 400 {object} domain.APIResponse
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId} [put]
func (h *DealHandler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	var req domain.UpdateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	deal, err := h.dealService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.DealToDTO(deal))
}

// DeleteDeal godoc
// @Summary Delete deal
// @Description Delete a deal and its shortlist
// @Tags Deals
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId} [delete]
func (h *DealHandler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	if err := h.dealService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
