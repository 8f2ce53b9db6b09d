package order

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrMalformedBody indicates the request body could not be decoded.
	ErrMalformedBody = errors.New("malformed body")
	// ErrMissingItems indicates the request carried no items field.
	ErrMissingItems = errors.New("missing items")
	// ErrBadItemShape indicates an item without numeric price or quantity.
	ErrBadItemShape = errors.New("bad item shape")
)

// Order represents a customer order in the system. Orders are immutable once
// created; the ID is assigned by the store on append.
type Order struct {
	ID              int64           `json:"id"`
	Timestamp       string          `json:"timestamp"`
	Address         string          `json:"address"`
	Items           []Item          `json:"items"`
	Total           float64         `json:"total"`
	DeliveryDetails json.RawMessage `json:"deliveryDetails"`
}

// New constructs an order from validated request data. The total is computed
// exactly once here; an item without numeric price and quantity fails the
// whole construction with ErrBadItemShape rather than contributing zero.
func New(address string, items []Item, deliveryDetails json.RawMessage) (*Order, error) {
	var total float64
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return nil, err
		}
		total += subtotal
	}

	return &Order{
		Timestamp:       time.Now().Format(time.RFC3339Nano),
		Address:         address,
		Items:           items,
		Total:           total,
		DeliveryDetails: deliveryDetails,
	}, nil
}
