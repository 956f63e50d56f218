package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assetcore/internal/httpserver"
	"assetcore/internal/models"
	"assetcore/internal/store"
)

// countingServer fronts the real router with a per-path GET counter so tests
// can observe how many requests actually reach the API.
func countingServer(t *testing.T) (*httptest.Server, *atomic.Int64, store.Store) {
	t.Helper()
	s := store.NewMemory()
	router := httpserver.NewRouter(s, zap.NewNop().Sugar())
	var gets atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &gets, s
}

func seedOne(t *testing.T, c *Client) models.Asset {
	t.Helper()
	a, err := c.CreateAsset(context.Background(), models.AssetInput{
		AssetID:  "AST-2025-001",
		Name:     "Cached Laptop",
		Category: "it-equipment",
		Location: "HQ",
	})
	require.NoError(t, err)
	return a
}

func TestClientCachesRepeatedReads(t *testing.T) {
	srv, gets, _ := countingServer(t)
	c := New(srv.URL)
	seedOne(t, c)
	ctx := context.Background()

	before := gets.Load()
	first, err := c.Assets(ctx, AssetQuery{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := c.Assets(ctx, AssetQuery{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, before+1, gets.Load(), "second read must come from cache")
}

func TestClientQueryVariantsCacheSeparately(t *testing.T) {
	srv, gets, _ := countingServer(t)
	c := New(srv.URL)
	seedOne(t, c)
	ctx := context.Background()

	before := gets.Load()
	_, err := c.Assets(ctx, AssetQuery{})
	require.NoError(t, err)
	_, err = c.Assets(ctx, AssetQuery{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, before+2, gets.Load(), "distinct query strings are distinct cache keys")
}

func TestClientMutationInvalidatesAssetScope(t *testing.T) {
	srv, _, _ := countingServer(t)
	c := New(srv.URL)
	a := seedOne(t, c)
	ctx := context.Background()

	listed, err := c.Assets(ctx, AssetQuery{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	metricsBefore, err := c.AssetMetrics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), metricsBefore.TotalAssets)

	status := models.AssetStatusRetired
	_, err = c.UpdateAsset(ctx, a.ID, models.AssetPatch{Status: &status})
	require.NoError(t, err)

	listed, err = c.Assets(ctx, AssetQuery{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.AssetStatusRetired, listed[0].Status, "stale list entry must be evicted")

	metricsAfter, err := c.AssetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), metricsAfter.RetiredAssets, "metrics cache invalidated with the asset")
}

func TestClientDeleteInvalidates(t *testing.T) {
	srv, _, _ := countingServer(t)
	c := New(srv.URL)
	a := seedOne(t, c)
	ctx := context.Background()

	_, err := c.Asset(ctx, a.ID)
	require.NoError(t, err)

	require.NoError(t, c.DeleteAsset(ctx, a.ID))

	_, err = c.Asset(ctx, a.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClientValidatesBeforeSending(t *testing.T) {
	srv, gets, _ := countingServer(t)
	c := New(srv.URL)

	before := gets.Load()
	_, err := c.CreateAsset(context.Background(), models.AssetInput{Name: "missing everything"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, before, gets.Load(), "invalid input never reaches the wire")
}

func TestClientCoalescesConcurrentColdReads(t *testing.T) {
	var upstream atomic.Int64
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstream.Add(1)
		time.Sleep(100 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer slow.Close()

	c := New(slow.URL)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Assets(ctx, AssetQuery{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), upstream.Load(), "concurrent cold reads share one upstream request")
}

func TestClientSurfacesServerValidationErrors(t *testing.T) {
	srv, _, _ := countingServer(t)
	c := New(srv.URL)
	seedOne(t, c)

	// second create with the same asset id passes client validation but
	// conflicts server-side
	_, err := c.CreateAsset(context.Background(), models.AssetInput{
		AssetID:  "AST-2025-001",
		Name:     "Duplicate",
		Category: "it-equipment",
		Location: "HQ",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.NotEmpty(t, apiErr.Errors)
	assert.Equal(t, "assetId", apiErr.Errors[0].Field)
}

func TestClientGenerateAssetIDIsNotCached(t *testing.T) {
	srv, _, _ := countingServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	first, err := c.GenerateAssetID(ctx)
	require.NoError(t, err)

	_, err = c.CreateAsset(ctx, models.AssetInput{
		AssetID:  first,
		Name:     "Takes the slot",
		Category: "machinery",
		Location: "Plant",
	})
	require.NoError(t, err)

	second, err := c.GenerateAssetID(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "advisory id advances once the slot is taken")
}
