package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/datagetws/orders-api/internal/dal/memstore"
	"github.com/datagetws/orders-api/internal/service/services/ordersvc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport(t *testing.T) *HTTPTransport {
	t.Helper()

	viper.Set("server.http.port", "0")
	viper.Set("server.http.cors.allowed_origins", []string{"https://datagetws.web.app", "https://sloths-clicker.web.app"})
	viper.Set("server.http.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.Set("server.http.cors.allowed_headers", []string{"*"})
	viper.Set("server.stream.interval_seconds", 1)

	svc := ordersvc.MustNewOrderService(ordersvc.WithStore(memstore.NewStore()))
	transport := NewHTTPTransport(svc)
	transport.RegisterRoutes()

	return transport
}

func TestHome(t *testing.T) {
	transport := newTestTransport(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	transport.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Orders API"}`, rec.Body.String())
}

func TestCreateThenList(t *testing.T) {
	transport := newTestTransport(t)

	body := `{"items":[{"price":10,"quantity":2}],"address":"Main st 1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	transport.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec = httptest.NewRecorder()
	transport.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []struct {
		ID      int64   `json:"id"`
		Address string  `json:"address"`
		Total   float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "Main st 1", orders[0].Address)
	assert.Equal(t, 20.0, orders[0].Total)
}

func TestCORSPreflight(t *testing.T) {
	transport := newTestTransport(t)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		req.Header.Set("Origin", "https://datagetws.web.app")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		transport.router.ServeHTTP(rec, req)

		assert.Equal(t, "https://datagetws.web.app", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		transport.router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestStreamEndpointHeaders(t *testing.T) {
	transport := newTestTransport(t)

	server := httptest.NewServer(transport.router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/orders/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	// Dropping the connection ends this subscriber's loop server-side.
	cancel()
	time.Sleep(10 * time.Millisecond)
}
