package memstore

import (
	"context"
	"sync"

	"github.com/datagetws/orders-api/internal/service/models/order"
)

// Store keeps all orders in memory for the lifetime of the process. Orders
// are append-only: there is no update or delete, so ids stay contiguous and
// strictly increasing from 1.
type Store struct {
	mu     sync.Mutex
	nextID int64
	orders []order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next id to the order, advances the counter and appends
// the order, all under one lock so concurrent callers never share an id.
func (s *Store) Append(ctx context.Context, o order.Order) order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, o)

	return o
}

// Snapshot returns a copy of the current order list in insertion order.
// Callers may not mutate the store through the returned slice.
func (s *Store) Snapshot(ctx context.Context) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)

	return out
}
