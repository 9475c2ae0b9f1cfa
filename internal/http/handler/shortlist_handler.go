package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/mapper"
	"github.com/akwaba-immo/operations-api/internal/service"
)

// ShortlistHandler handles the persisted deal-property associations
type ShortlistHandler struct {
	shortlistService *service.ShortlistService
	logger           *zap.Logger
}

func NewShortlistHandler(shortlistService *service.ShortlistService, logger *zap.Logger) *ShortlistHandler {
	return &ShortlistHandler{shortlistService: shortlistService, logger: logger}
}

// AddToShortlist godoc
// @Summary Add property to deal shortlist
// @Description Persist a property on a deal's shortlist. Re-adding the same property updates the stored score instead of duplicating.
// @Tags Shortlist
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Param request body domain.AddShortlistEntryRequest true "Shortlist entry data"
// @Success 201 {object} domain.APIResponse{data=domain.ShortlistEntryDTO}
// @Failure 400 {object} domain.APIResponse
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId}/properties [post]
func (h *ShortlistHandler) AddToShortlist(w http.ResponseWriter, r *http.Request) {
	dealID, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	var req domain.AddShortlistEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	entry, err := h.shortlistService.Add(r.Context(), dealID, &req)
	if err != nil {
		h.logger.Error("failed to add shortlist entry",
			zap.Error(err),
			zap.String("deal_id", dealID.String()),
			zap.String("property_id", req.PropertyID.String()),
		)
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapper.ShortlistEntryToDTO(entry))
}

// ListShortlist godoc
// @Summary List deal shortlist
// @Description Get the properties shortlisted for a deal, best match first
// @Tags Shortlist
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Success 200 {object} domain.APIResponse{data=[]domain.ShortlistEntryDTO}
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId}/properties [get]
func (h *ShortlistHandler) ListShortlist(w http.ResponseWriter, r *http.Request) {
	dealID, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}

	entries, err := h.shortlistService.List(r.Context(), dealID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	dtos := make([]domain.ShortlistEntryDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, mapper.ShortlistEntryToDTO(&entries[i]))
	}
	respondJSON(w, http.StatusOK, dtos)
}

// RemoveFromShortlist godoc
// @Summary Remove property from deal shortlist
// @Description Delete a shortlist entry
// @Tags Shortlist
// @Param tenantId path string true "Tenant ID"
// @Param dealId path string true "Deal ID"
// @Param propertyId path string true "Property ID"
// @Success 204 "No Content"
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/crm/deals/{dealId}/properties/{propertyId} [delete]
func (h *ShortlistHandler) RemoveFromShortlist(w http.ResponseWriter, r *http.Request) {
	dealID, err := parseUUIDParam(r, "dealId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid deal ID: must be a valid UUID")
		return
	}
	propertyID, err := parseUUIDParam(r, "propertyId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid property ID: must be a valid UUID")
		return
	}

	if err := h.shortlistService.Remove(r.Context(), dealID, propertyID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
