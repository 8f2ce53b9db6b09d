package ordersvc

import (
	"context"
	"log/slog"

	"github.com/datagetws/orders-api/internal/dal/interfaces/iorderstore"
	"github.com/datagetws/orders-api/internal/service/models/order"
)

// notifier forwards a created order to an external system.
type notifier interface {
	Notify(ctx context.Context, o order.Order) error
}

// OrderService is a service for managing orders.
type OrderService struct {
	store    iorderstore.IOrderStore
	notifier notifier
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		panic("ordersvc requires a store")
	}

	return s
}

// WithStore sets the order store for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithStore(store iorderstore.IOrderStore) option {
	return func(s *OrderService) {
		s.store = store
	}
}

// WithNotifier sets the admin notifier for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithNotifier(n notifier) option {
	return func(s *OrderService) {
		s.notifier = n
	}
}

// Create appends the order to the store and forwards it to the admin API in a
// detached goroutine. Forwarding is fire-and-forget: its outcome is logged and
// never changes what the creation caller sees.
func (s *OrderService) Create(ctx context.Context, o order.Order) order.Order {
	created := s.store.Append(ctx, o)

	if s.notifier != nil {
		// Outlive the request but keep its values for tracing.
		notifyCtx := context.WithoutCancel(ctx)
		go func() {
			if err := s.notifier.Notify(notifyCtx, created); err != nil {
				slog.Error("Failed to forward order to admin api", "order_id", created.ID, "error", err)
			}
		}()
	}

	return created
}

// List returns the current orders, optionally windowed by offset and limit.
func (s *OrderService) List(ctx context.Context, query order.QueryOrdersModel) []order.Order {
	orders := s.store.Snapshot(ctx)

	if query.Offset > 0 {
		if query.Offset >= len(orders) {
			return []order.Order{}
		}
		orders = orders[query.Offset:]
	}
	if query.Limit > 0 && query.Limit < len(orders) {
		orders = orders[:query.Limit]
	}

	return orders
}
