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

// PropertyHandler handles HTTP requests for the property inventory
type PropertyHandler struct {
	propertyService *service.PropertyService
	logger          *zap.Logger
}

func NewPropertyHandler(propertyService *service.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, logger: logger}
}

// ListProperties godoc
// @Summary List properties
// @Description Get paginated list of the tenant's property inventory
// @Tags Properties
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param status query string false "Filter by status" Enums(available, reserved, rented, sold, archived)
// @Param propertyType query string false "Filter by type" Enums(apartment, house, villa, land, office, retail)
// @Param zone query string false "Filter by zone"
// @Param search query string false "Search by title or reference"
// @Success 200 {object} domain.APIResponse{data=domain.PaginatedResponse}
// @Failure 400 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/properties [get]
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.PropertyFilters{}
	if status := r.URL.Query().Get("status"); status != "" {
		st := domain.PropertyStatus(status)
		if !st.IsValid() {
			respondError(w, http.StatusBadRequest, "Invalid status: must be one of available, reserved, rented, sold, archived")
			return
		}
		filters.Status = &st
	}
	if propertyType := r.URL.Query().Get("propertyType"); propertyType != "" {
		pt := domain.PropertyType(propertyType)
		if !pt.IsValid() {
			respondError(w, http.StatusBadRequest, "Invalid propertyType: must be one of apartment, house, villa, land, office, retail")
			return
		}
		filters.PropertyType = &pt
	}
	if zone := r.URL.Query().Get("zone"); zone != "" {
		filters.Zone = &zone
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filters.SearchQuery = &search
	}

	properties, total, err := h.propertyService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list properties", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	dtos := make([]domain.PropertyDTO, 0, len(properties))
	for i := range properties {
		dtos = append(dtos, mapper.PropertyToDTO(&properties[i]))
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// GetProperty godoc
// @Summary Get property
// @Description Get a property by ID
// @Tags Properties
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param propertyId path string true "Property ID"
// @Success 200 {object} domain.APIResponse{data=domain.PropertyDTO}
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/properties/{propertyId} [get]
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "propertyId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid property ID: must be a valid UUID")
		return
	}

	property, err := h.propertyService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.PropertyToDTO(property))
}

// CreateProperty godoc
// @Summary Create property
// @Description Add a property to the tenant's inventory
// @Tags Properties
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param request body domain.CreatePropertyRequest true "Property data"
// @Success 201 {object} domain.APIResponse{data=domain.PropertyDTO}
// @Failure 400 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/properties [post]
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	property, err := h.propertyService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create property", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapper.PropertyToDTO(property))
}

// UpdateProperty godoc
// @Summary Update property
// @Description Update an existing property
// @Tags Properties
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param propertyId path string true "Property ID"
// @Param request body domain.UpdatePropertyRequest true "Property data"
// @Success 200 {object} domain.APIResponse{data=domain.PropertyDTO}
// @Failure 400 {object} domain.APIResponse
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/properties/{propertyId} [put]
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "propertyId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid property ID: must be a valid UUID")
		return
	}

	var req domain.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.PropertyToDTO(property))
}
