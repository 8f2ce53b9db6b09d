package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/datagetws/orders-api/internal/service/models/order"
	"github.com/datagetws/orders-api/internal/transport/http/httperr"
	"github.com/gorilla/schema"
)

type service interface {
	List(ctx context.Context, query order.QueryOrdersModel) []order.Order
}

type queryOrdersRequest struct {
	Limit  int `schema:"limit,omitempty"`
	Offset int `schema:"offset,omitempty"`
}

func (q *queryOrdersRequest) ToModel() order.QueryOrdersModel {
	return order.QueryOrdersModel{
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

// ListOrders handles the list orders request.
// @Summary List orders
// @Produce json
// @Param limit query int false "Max orders to return"
// @Param offset query int false "Orders to skip"
// @Success 200 {array} order.Order
// @Router /api/orders [get]
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		httperr.Write(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding list orders query", "error", err)

		return
	}

	orders := service.List(r.Context(), query.ToModel())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		slog.Error("Error sending response for list orders", "error", err)
	}
}
