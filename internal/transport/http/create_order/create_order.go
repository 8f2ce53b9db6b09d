package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/datagetws/orders-api/internal/service/models/order"
	"github.com/datagetws/orders-api/internal/transport/http/httperr"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, o order.Order) order.Order
}

// createOrderRequest represents a create order request. Items is a pointer so
// an absent field is distinguishable from an empty list: only absence (or an
// explicit null) is rejected.
type createOrderRequest struct {
	Address         string          `json:"address"`
	Items           *[]order.Item   `json:"items"           validate:"required"`
	DeliveryDetails json.RawMessage `json:"deliveryDetails"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.Order.
func (r *createOrderRequest) toModel() (*order.Order, error) {
	return order.New(r.Address, *r.Items, r.DeliveryDetails)
}

// CreateOrder handles the create order request.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order"
// @Success 201 {object} order.Order
// @Failure 400 {object} map[string]string
// @Router /api/orders [post]
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderReq := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil {
		httperr.Write(w, http.StatusBadRequest, order.ErrMalformedBody.Error())
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := orderReq.Validate(); err != nil {
		httperr.Write(w, http.StatusBadRequest, order.ErrMissingItems.Error())
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	model, err := orderReq.toModel()
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, err.Error())
		slog.Error("Error converting create order request to model", "error", err)

		return
	}

	created := service.Create(r.Context(), *model)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}
