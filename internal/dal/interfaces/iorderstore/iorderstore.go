package iorderstore

import (
	"context"

	"github.com/datagetws/orders-api/internal/service/models/order"
)

// IOrderStore is an interface for the in-memory order store.
type IOrderStore interface {
	Append(ctx context.Context, o order.Order) order.Order
	Snapshot(ctx context.Context) []order.Order
}
