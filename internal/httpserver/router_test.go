package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assetcore/internal/httpserver"
	"assetcore/internal/models"
	"assetcore/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	s := store.NewMemory()
	srv := httptest.NewServer(httpserver.NewRouter(s, zap.NewNop().Sugar()))
	t.Cleanup(srv.Close)
	return srv, s
}

func doJSON(t *testing.T, method, url string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestAssetLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// advisory id for an empty store
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/assets/generate-id", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var proposed struct {
		AssetID string `json:"assetId"`
	}
	require.NoError(t, json.Unmarshal(body, &proposed))
	assert.Equal(t, fmt.Sprintf("AST-%d-001", time.Now().Year()), proposed.AssetID)

	// create with the minimal payload; status defaults to active
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/assets", map[string]any{
		"assetId":  proposed.AssetID,
		"name":     "MacBook Pro",
		"category": "it-equipment",
		"location": "IT Department",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Asset
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, models.AssetStatusActive, created.Status)
	assert.Positive(t, created.ID)

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Asset
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created.AssetID, fetched.AssetID)

	// search matches the name case-insensitively
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/assets?search=macbook", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found []models.Asset
	require.NoError(t, json.Unmarshal(body, &found))
	require.Len(t, found, 1)

	resp, body = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), map[string]any{
		"status": "maintenance",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Asset
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, models.AssetStatusMaintenance, updated.Status)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAssetValidationError(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/assets", map[string]any{
		"name": "incomplete",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody struct {
		Message string              `json:"message"`
		Errors  []models.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "invalid payload", errBody.Message)
	fields := make([]string, 0, len(errBody.Errors))
	for _, fe := range errBody.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "assetId")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "location")
}

func TestCreateAssetConflict(t *testing.T) {
	srv, _ := newTestServer(t)

	payload := map[string]any{
		"assetId":  "AST-2025-001",
		"name":     "First",
		"category": "furniture",
		"location": "HQ",
	}
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/assets", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload["name"] = "Second"
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/assets", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "assetId")
	assert.Contains(t, string(body), "already exists")
}

func TestCreateAssetRejectsUnknownFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/assets", map[string]any{
		"assetId":  "AST-2025-001",
		"name":     "Thing",
		"category": "furniture",
		"location": "HQ",
		"serial":   "not-a-field",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAssetInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/assets/banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAssetsEmptyIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/assets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestFilterAssets(t *testing.T) {
	srv, _ := newTestServer(t)

	for i, cat := range []string{"it-equipment", "furniture"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/assets", map[string]any{
			"assetId":  fmt.Sprintf("AST-2025-%03d", i+1),
			"name":     fmt.Sprintf("Asset %d", i),
			"category": cat,
			"location": "HQ",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/assets?category=furniture", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var filtered []models.Asset
	require.NoError(t, json.Unmarshal(body, &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "furniture", filtered[0].Category)
}

func TestWorkOrderRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/work-orders", map[string]any{
		"workOrderId": "WO-2025-001",
		"assetId":     1,
		"title":       "Replace toner",
		"type":        "preventive",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.WorkOrder
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "medium", created.Priority)
	assert.Equal(t, models.WorkOrderStatusOpen, created.Status)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/work-orders?assetId=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.WorkOrder
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Len(t, orders, 1)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/work-orders?assetId=42", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Empty(t, orders)
}

func TestAuditTrailEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/assets", map[string]any{
		"assetId":  "AST-2025-001",
		"name":     "Tracked",
		"category": "machinery",
		"location": "Plant",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Asset
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/assets/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/audit-logs?assetId=%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []models.AuditLog
	require.NoError(t, json.Unmarshal(body, &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionDeleted, logs[0].Action)
	assert.Equal(t, models.AuditActionCreated, logs[1].Action)
}

func TestMetricsEndpoints(t *testing.T) {
	srv, s := newTestServer(t)
	require.NoError(t, store.Seed(context.Background(), s, zap.NewNop().Sugar()))

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var am store.AssetMetrics
	require.NoError(t, json.Unmarshal(body, &am))
	assert.Equal(t, int64(5), am.TotalAssets)
	assert.Equal(t, am.TotalAssets, am.ActiveAssets+am.MaintenanceAssets+am.RetiredAssets)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/metrics/work-orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var wm store.WorkOrderMetrics
	require.NoError(t, json.Unmarshal(body, &wm))
	assert.Equal(t, int64(2), wm.TotalWorkOrders)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/metrics/maintenance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mm store.MaintenanceMetrics
	require.NoError(t, json.Unmarshal(body, &mm))
	assert.Equal(t, int64(2), mm.TotalScheduled)
}

func TestEnergyRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/energy", map[string]any{
		"assetId":         3,
		"measurementDate": "2025-02-01T00:00:00Z",
		"energyType":      "electricity",
		"consumption":     42.0,
		"unit":            "kWh",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/energy?assetId=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var readings []models.EnergyConsumption
	require.NoError(t, json.Unmarshal(body, &readings))
	assert.Len(t, readings, 1)
}

func TestHealthAndInstrumentation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "assetcore_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/assets", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/assets", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get("X-Request-ID"))
}
