package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/mapper"
	"github.com/akwaba-immo/operations-api/internal/service"
)

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, logger: logger}
}

// ListContacts godoc
// @Summary List contacts
// @Description Get paginated list of the tenant's contacts
// @Tags Contacts
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search by name or email"
// @Success 200 {object} domain.APIResponse{data=domain.PaginatedResponse}
// @Security BearerAuth
// @Router /tenants/{tenantId}/contacts [get]
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	contacts, total, err := h.contactService.List(r.Context(), page, pageSize, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("failed to list contacts", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	dtos := make([]domain.ContactDTO, 0, len(contacts))
	for i := range contacts {
		dtos = append(dtos, mapper.ContactToDTO(&contacts[i]))
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	})
}

// GetContact godoc
// @Summary Get contact
// @Description Get a contact by ID
// @Tags Contacts
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param contactId path string true "Contact ID"
// @Success 200 {object} domain.APIResponse{data=domain.ContactDTO}
// @Failure 404 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/contacts/{contactId} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "contactId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid contact ID: must be a valid UUID")
		return
	}

	contact, err := h.contactService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapper.ContactToDTO(contact))
}

// CreateContact godoc
// @Summary Create contact
// @Description Create a contact, typically a property owner
// @Tags Contacts
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID"
// @Param request body domain.CreateContactRequest true "Contact data"
// @Success 201 {object} domain.APIResponse{data=domain.ContactDTO}
// @Failure 400 {object} domain.APIResponse
// @Security BearerAuth
// @Router /tenants/{tenantId}/contacts [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contact, err := h.contactService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create contact", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapper.ContactToDTO(contact))
}
