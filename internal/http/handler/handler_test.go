package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akwaba-immo/operations-api/internal/auth"
	"github.com/akwaba-immo/operations-api/internal/domain"
	"github.com/akwaba-immo/operations-api/internal/matching"
	"github.com/akwaba-immo/operations-api/internal/repository"
	"github.com/akwaba-immo/operations-api/internal/service"
	"github.com/akwaba-immo/operations-api/internal/testutil"
)

type testAPI struct {
	db     *gorm.DB
	router chi.Router
	tenant *domain.Tenant
}

// newTestAPI wires the handlers over a real sqlite database with a fake
// authentication layer that scopes every request to the given tenant.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tenant := testutil.CreateTestTenant(t, db, "agence")
	logger := zap.NewNop()

	deals := repository.NewDealRepository(db)
	properties := repository.NewPropertyRepository(db)
	contacts := repository.NewContactRepository(db)
	shortlist := repository.NewShortlistRepository(db)

	stats := matching.NewStatsCache(properties, time.Minute)
	engine, err := matching.NewEngine(stats, matching.DefaultWeights(), logger)
	require.NoError(t, err)

	dealHandler := NewDealHandler(service.NewDealService(deals, contacts, logger), logger)
	propertyHandler := NewPropertyHandler(service.NewPropertyService(properties, contacts, logger), logger)
	matchHandler := NewMatchHandler(service.NewMatchService(deals, properties, engine, logger), logger)
	shortlistHandler := NewShortlistHandler(
		service.NewShortlistService(deals, properties, contacts, shortlist, engine, logger), logger)
	contactHandler := NewContactHandler(service.NewContactService(contacts, logger), logger)

	seedAuth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithUserContext(r.Context(), &auth.UserContext{
				UserID:      uuid.New(),
				TenantID:    tenant.ID,
				DisplayName: "Test Agent",
				Role:        domain.RoleAgent,
			})
			ctx = auth.WithTenantFilter(ctx, tenant.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	r := chi.NewRouter()
	r.Route("/api/v1/tenants/{tenantId}", func(r chi.Router) {
		r.Use(seedAuth)
		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactHandler.ListContacts)
			r.Post("/", contactHandler.CreateContact)
			r.Get("/{contactId}", contactHandler.GetContact)
		})
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.ListProperties)
			r.Post("/", propertyHandler.CreateProperty)
			r.Get("/{propertyId}", propertyHandler.GetProperty)
			r.Put("/{propertyId}", propertyHandler.UpdateProperty)
		})
		r.Route("/crm/deals", func(r chi.Router) {
			r.Get("/", dealHandler.ListDeals)
			r.Post("/", dealHandler.CreateDeal)
			r.Route("/{dealId}", func(r chi.Router) {
				r.Get("/", dealHandler.GetDeal)
				r.Put("/", dealHandler.UpdateDeal)
				r.Delete("/", dealHandler.DeleteDeal)
				r.Route("/properties", func(r chi.Router) {
					r.Get("/", shortlistHandler.ListShortlist)
					r.Post("/", shortlistHandler.AddToShortlist)
					r.Post("/match", matchHandler.MatchProperties)
					r.Delete("/{propertyId}", shortlistHandler.RemoveFromShortlist)
				})
			})
		})
	})

	return &testAPI{db: db, router: r, tenant: tenant}
}

func (api *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

func (api *testAPI) basePath() string {
	return fmt.Sprintf("/api/v1/tenants/%s", api.tenant.ID)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domain.APIResponse {
	t.Helper()
	var env domain.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestMatchEndpoint(t *testing.T) {
	api := newTestAPI(t)
	deal := testutil.CreateTestDeal(t, api.db, api.tenant.ID, func(d *domain.Deal) {
		min, max := 20_000_000.0, 30_000_000.0
		rooms := 3
		d.BudgetMin = &min
		d.BudgetMax = &max
		d.Zones = domain.StringList{"Cocody"}
		d.MinRooms = &rooms
	})
	good := testutil.CreateTestProperty(t, api.db, api.tenant.ID, nil)
	testutil.CreateTestProperty(t, api.db, api.tenant.ID, func(p *domain.Property) {
		p.Price = 50_000_000
		p.Zone = "Yopougon"
		p.Rooms = 2
	})

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties/match?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var results []domain.MatchResultDTO
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 2)
	assert.Equal(t, good.ID, results[0].PropertyID)
	assert.Greater(t, results[0].MatchScore, results[1].MatchScore)
	assert.NotEmpty(t, results[0].ExplanationText)
}

func TestMatchEndpoint_EmptyInventory(t *testing.T) {
	api := newTestAPI(t)
	deal := testutil.CreateTestDeal(t, api.db, api.tenant.ID, nil)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties/match", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestMatchEndpoint_Errors(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+uuid.NewString()+"/properties/match", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	rec = api.do(t, http.MethodPost, api.basePath()+"/crm/deals/not-a-uuid/properties/match", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	deal := testutil.CreateTestDeal(t, api.db, api.tenant.ID, nil)
	rec = api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties/match?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDealEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals", map[string]interface{}{
		"title":     "Recherche appartement Cocody",
		"type":      "ACHAT",
		"budgetMin": 20_000_000,
		"budgetMax": 30_000_000,
		"zones":     []string{"Cocody"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	var created domain.DealDTO
	raw, _ := json.Marshal(env.Data)
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, domain.DealStageOpen, created.Stage)

	rec = api.do(t, http.MethodGet, api.basePath()+"/crm/deals/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodDelete, api.basePath()+"/crm/deals/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, api.basePath()+"/crm/deals/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDealEndpoints_Validation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals", map[string]interface{}{
		"type": "ACHAT",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "title")

	rec = api.do(t, http.MethodPost, api.basePath()+"/crm/deals", map[string]interface{}{
		"title": "Type invalide",
		"type":  "EMPRUNT",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShortlistEndpoints(t *testing.T) {
	api := newTestAPI(t)
	deal := testutil.CreateTestDeal(t, api.db, api.tenant.ID, nil)
	property := testutil.CreateTestProperty(t, api.db, api.tenant.ID, nil)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties", map[string]interface{}{
		"propertyId": property.ID.String(),
		"matchScore": 88,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	var entry domain.ShortlistEntryDTO
	raw, _ := json.Marshal(env.Data)
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, 88, entry.MatchScore)
	require.NotNil(t, entry.Property)
	assert.Equal(t, property.ID, entry.Property.ID)

	rec = api.do(t, http.MethodGet, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	data, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)

	rec = api.do(t, http.MethodDelete, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties/"+property.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties/"+property.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShortlistEndpoints_ScoreBounds(t *testing.T) {
	api := newTestAPI(t)
	deal := testutil.CreateTestDeal(t, api.db, api.tenant.ID, nil)
	property := testutil.CreateTestProperty(t, api.db, api.tenant.ID, nil)

	rec := api.do(t, http.MethodPost, api.basePath()+"/crm/deals/"+deal.ID.String()+"/properties", map[string]interface{}{
		"propertyId": property.ID.String(),
		"matchScore": 140,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPropertyEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, api.basePath()+"/properties", map[string]interface{}{
		"title":        "Appartement Plateau",
		"propertyType": "apartment",
		"price":        18_000_000,
		"zone":         "Plateau",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	var created domain.PropertyDTO
	raw, _ := json.Marshal(env.Data)
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, domain.PropertyStatusAvailable, created.Status)
	assert.NotEmpty(t, created.InternalReference)

	rec = api.do(t, http.MethodPost, api.basePath()+"/properties", map[string]interface{}{
		"title":        "Prix manquant",
		"propertyType": "apartment",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, api.basePath()+"/properties?status=available", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, api.basePath()+"/properties?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpoints(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, api.basePath()+"/contacts", map[string]interface{}{
		"name":  "Mme Kouassi",
		"email": "kouassi@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	var created domain.ContactDTO
	raw, _ := json.Marshal(env.Data)
	require.NoError(t, json.Unmarshal(raw, &created))

	rec = api.do(t, http.MethodGet, api.basePath()+"/contacts/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, api.basePath()+"/contacts/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
