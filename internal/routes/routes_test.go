package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	"github.com/BruksfildServices01/handyman-marketplace/internal/config"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/payments"
	"github.com/BruksfildServices01/handyman-marketplace/internal/infra/repository/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	store  *memory.Store
	audit  *audit.Dispatcher
}

func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()

	store := memory.NewStore()
	dispatcher := audit.NewDispatcher(store, nil)

	cfg := &config.Config{
		Env:           env,
		JWTSecret:     "secret",
		AllowedOrigin: "*",
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		Jobs:            store,
		Bids:            store,
		Catalog:         store,
		Payments:        store,
		Users:           store,
		PaymentProvider: payments.NewMock(),
		Audit:           dispatcher,
		AuditTrail:      store,
	}, cfg)

	return &testServer{t: t, engine: r, store: store, audit: dispatcher}
}

func (s *testServer) do(method, path string, body any) (int, map[string]any) {
	s.t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	out := map[string]any{}
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func (s *testServer) doList(path string) []map[string]any {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var out []map[string]any
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func subServiceID(t *testing.T, svc map[string]any, slug string) string {
	t.Helper()
	for _, raw := range svc["subServices"].([]any) {
		sub := raw.(map[string]any)
		if sub["slug"] == slug {
			return sub["id"].(string)
		}
	}
	t.Fatalf("sub-service %s not found", slug)
	return ""
}

func TestRoutes_MarketplaceFlow(t *testing.T) {
	s := newTestServer(t, "development")

	// --- catalog ---
	code, seeded := s.do(http.MethodPost, "/api/services/seed", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, seeded["ok"])
	assert.EqualValues(t, 11, seeded["count"])

	code, _ = s.do(http.MethodPost, "/api/services/seed", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, s.doList("/api/services"), 11)

	code, cats := s.do(http.MethodPost, "/api/categories/seed", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 6, cats["count"])

	code, cleaning := s.do(http.MethodGet, "/api/services/cleaning", nil)
	require.Equal(t, http.StatusOK, code)
	subID := subServiceID(t, cleaning, "cleaning-standard")
	unpricedID := subServiceID(t, cleaning, "ironing")

	code, sub := s.do(http.MethodGet, "/api/services/sub-service/"+subID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, sub["pricingConfig"])

	selection := map[string]any{
		"selectedSize":      "60m²",
		"selectedEquipment": []string{"Bring own equipment"},
		"selectedAddons":    []string{"Inside fridge", "Unknown addon"},
	}
	code, quote := s.do(http.MethodPost, "/api/services/sub-service/"+subID+"/calculate-price", selection)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 220, quote["totalPriceQAR"])

	code, body := s.do(http.MethodPost, "/api/services/sub-service/"+unpricedID+"/calculate-price", selection)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "no_pricing_config", body["error_code"])

	// --- job ---
	jobReq := map[string]any{
		"title":        "Clean my flat",
		"description":  "Two bedrooms, one kitchen",
		"subServiceId": subID,
		"customerId":   "customer-1",
		"scheduledAt":  "2026-05-01T09:00:00Z",
	}
	for k, v := range selection {
		jobReq[k] = v
	}
	code, job := s.do(http.MethodPost, "/api/jobs", jobReq)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "PENDING", job["status"])
	assert.Equal(t, quote["totalPriceQAR"], job["estimatedPriceQAR"])
	jobID := job["id"].(string)

	// --- bids ---
	code, bid1 := s.do(http.MethodPost, "/api/bids", map[string]any{"jobId": jobID, "providerId": "prov-1", "amountQAR": 240})
	require.Equal(t, http.StatusCreated, code)
	code, bid2 := s.do(http.MethodPost, "/api/bids", map[string]any{"jobId": jobID, "providerId": "prov-2", "amountQAR": 200})
	require.Equal(t, http.StatusCreated, code)

	code, bids := s.do(http.MethodGet, "/api/jobs/"+jobID+"/bids", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, bids["total"])

	code, accepted := s.do(http.MethodPost, "/api/bids/"+bid2["id"].(string)+"/accept", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ACCEPTED", accepted["status"])

	code, job = s.do(http.MethodGet, "/api/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ACCEPTED", job["status"])
	assert.Equal(t, "prov-2", job["providerId"])
	assert.NotEqual(t, bid1["id"], bid2["id"])

	// --- review ---
	code, _ = s.do(http.MethodPost, "/api/jobs/"+jobID+"/review", map[string]any{"rating": 5, "comment": "Spotless"})
	require.Equal(t, http.StatusCreated, code)
	code, body = s.do(http.MethodPost, "/api/jobs/"+jobID+"/review", map[string]any{"rating": 4})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "review_already_exists", body["error_code"])

	// --- payment ---
	code, intent := s.do(http.MethodPost, "/api/payments/intent", map[string]any{
		"amountQAR":  200,
		"jobId":      jobID,
		"customerId": "customer-1",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "mock", intent["provider"])
	assert.Equal(t, "mock_secret", intent["clientSecret"])
	intentID := intent["intentId"].(string)
	assert.True(t, strings.HasPrefix(intentID, "mock_intent_"+jobID+"_"))

	code, paid := s.do(http.MethodPost, "/api/payments/"+intentID+"/capture", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CAPTURED", paid["status"])

	code, refunded := s.do(http.MethodPost, "/api/payments/"+intentID+"/refund", map[string]any{"amountQAR": 50})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "REFUNDED", refunded["status"])

	// --- audit trail ---
	s.audit.Close()
	actions := map[string]bool{}
	for _, l := range s.store.AuditLogs() {
		actions[l.Action] = true
	}
	assert.True(t, actions["job_created"])
	assert.True(t, actions["bid_accepted"])
}

func TestRoutes_Errors(t *testing.T) {
	s := newTestServer(t, "development")

	code, body := s.do(http.MethodGet, "/api/jobs/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "job_not_found", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/jobs", map[string]any{
		"title": "ab", "description": "long enough", "customerId": "c", "categoryId": "cat",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_title", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/jobs", map[string]any{
		"title": "Valid", "description": "long enough", "customerId": "c",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "missing_category", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/jobs", map[string]any{
		"title": "Valid", "description": "long enough", "customerId": "c", "subServiceId": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "sub_service_not_found", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/jobs", map[string]any{
		"title": "Valid", "description": "long enough", "customerId": "c", "categoryId": "cat",
		"scheduledAt": "tomorrow",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_scheduled_at", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/bids", map[string]any{"jobId": "j", "providerId": "p", "amountQAR": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_amount", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/bids/ghost/accept", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "bid_not_found", body["error_code"])

	code, body = s.do(http.MethodGet, "/api/services/sub-service/ghost", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "sub_service_not_found", body["error_code"])

	code, body = s.do(http.MethodPost, "/api/payments/ghost/capture", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "payment_not_found", body["error_code"])

	code, _ = s.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRoutes_SeedRefusedInProduction(t *testing.T) {
	s := newTestServer(t, "production")

	code, body := s.do(http.MethodPost, "/api/services/seed", nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "seed_not_allowed", body["error_code"])

	code, _ = s.do(http.MethodPost, "/api/categories/seed", nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, health := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "production", health["environment"])
}

func TestRoutes_CalculatePriceWithEmptyChunkedBody(t *testing.T) {
	s := newTestServer(t, "development")

	code, _ := s.do(http.MethodPost, "/api/services/seed", nil)
	require.Equal(t, http.StatusOK, code)
	_, cleaning := s.do(http.MethodGet, "/api/services/cleaning", nil)
	path := "/api/services/sub-service/" + subServiceID(t, cleaning, "cleaning-standard") + "/calculate-price"

	code, base := s.do(http.MethodPost, path, map[string]any{})
	require.Equal(t, http.StatusOK, code)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		return w
	}

	w := post("")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, base["totalPriceQAR"], quote["totalPriceQAR"])

	w = post("{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}
