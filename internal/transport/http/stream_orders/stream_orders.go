package streamorders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/datagetws/orders-api/internal/service/models/order"
	"github.com/datagetws/orders-api/internal/transport/http/httperr"
)

type service interface {
	List(ctx context.Context, query order.QueryOrdersModel) []order.Order
}

// StreamOrders serves one SSE subscription. Every interval it snapshots the
// full order list and emits it as a single data frame, until the client
// disconnects or a write fails. Each subscriber runs its own ticker; a broken
// connection only ends its own loop.
// @Summary Stream orders
// @Produce text/event-stream
// @Success 200 {string} string "SSE frames, each a JSON array of all orders"
// @Router /api/orders/stream [get]
func StreamOrders(w http.ResponseWriter, r *http.Request, service service, interval time.Duration) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httperr.Write(w, http.StatusInternalServerError, "streaming unsupported")
		slog.Error("Response writer does not support flushing")

		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			payload, err := json.Marshal(service.List(ctx, order.QueryOrdersModel{}))
			if err != nil {
				slog.Error("Error marshaling orders for stream", "error", err)

				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				// Client went away; nothing to report.
				return
			}
			flusher.Flush()
		}
	}
}
