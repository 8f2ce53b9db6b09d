package createorder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/datagetws/orders-api/internal/service/models/order"
	createorder "github.com/datagetws/orders-api/internal/transport/http/create_order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	created []order.Order
}

func (s *stubService) Create(ctx context.Context, o order.Order) order.Order {
	o.ID = int64(len(s.created) + 1)
	s.created = append(s.created, o)

	return o
}

func post(t *testing.T, svc *stubService, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	createorder.CreateOrder(rec, req, svc)

	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Detail
}

func TestCreateOrder(t *testing.T) {
	svc := &stubService{}
	rec := post(t, svc, `{"items":[{"price":10,"quantity":2},{"price":5,"quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var created order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 25.0, created.Total)
	assert.Equal(t, "", created.Address)
	assert.Len(t, created.Items, 2)
	assert.NotEmpty(t, created.Timestamp)
	assert.Contains(t, rec.Body.String(), `"deliveryDetails":null`)

	require.Len(t, svc.created, 1)
}

func TestCreateOrderOptionalFields(t *testing.T) {
	svc := &stubService{}
	rec := post(t, svc, `{
		"items":[{"price":1,"quantity":1,"name":"pizza"}],
		"address":"Main st 1",
		"deliveryDetails":{"phone":"+1"}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"address":"Main st 1"`)
	assert.Contains(t, body, `"name":"pizza"`)
	assert.Contains(t, body, `"phone":"+1"`)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	svc := &stubService{}
	rec := post(t, svc, `{"items":[]}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Zero(t, created.Total)
}

func TestCreateOrderRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "malformed body", body: `{not json`, wantDetail: "malformed body"},
		{name: "empty body", body: ``, wantDetail: "malformed body"},
		{name: "missing items", body: `{"address":"a"}`, wantDetail: "missing items"},
		{name: "null items", body: `{"items":null}`, wantDetail: "missing items"},
		{name: "item without price", body: `{"items":[{"quantity":1}]}`, wantDetail: "bad item shape"},
		{name: "string price", body: `{"items":[{"price":"10","quantity":1}]}`, wantDetail: "bad item shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			rec := post(t, svc, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantDetail, detail(t, rec))

			// Invalid input never reaches the store.
			assert.Empty(t, svc.created)
		})
	}
}
