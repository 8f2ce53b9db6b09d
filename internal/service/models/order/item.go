package order

import "encoding/json"

// Item is a single order line. Clients may attach arbitrary extra fields to
// an item; the original JSON is kept so those fields survive re-serialization
// untouched.
type Item struct {
	price    float64
	quantity float64
	valid    bool
	raw      json.RawMessage
}

// NewItem builds an item programmatically. Items decoded from JSON keep their
// original payload instead.
func NewItem(price, quantity float64) Item {
	return Item{price: price, quantity: quantity, valid: true}
}

// Price returns the item unit price.
func (i Item) Price() float64 { return i.price }

// Quantity returns the ordered quantity.
func (i Item) Quantity() float64 { return i.quantity }

// Subtotal returns price*quantity, or ErrBadItemShape if the item was decoded
// without numeric price and quantity fields.
func (i Item) Subtotal() (float64, error) {
	if !i.valid {
		return 0, ErrBadItemShape
	}

	return i.price * i.quantity, nil
}

// UnmarshalJSON keeps the raw payload verbatim and probes price and quantity.
// A missing or non-numeric field is not an error at decode time; it surfaces
// as ErrBadItemShape when the total is computed.
func (i *Item) UnmarshalJSON(data []byte) error {
	i.raw = append(json.RawMessage(nil), data...)

	var probe struct {
		Price    *float64 `json:"price"`
		Quantity *float64 `json:"quantity"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.Price == nil || probe.Quantity == nil {
		i.valid = false

		return nil
	}

	i.price = *probe.Price
	i.quantity = *probe.Quantity
	i.valid = true

	return nil
}

// MarshalJSON emits the original payload when the item came from a request,
// so extra fields pass through unchanged.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.raw != nil {
		return i.raw, nil
	}

	return json.Marshal(struct {
		Price    float64 `json:"price"`
		Quantity float64 `json:"quantity"`
	}{Price: i.price, Quantity: i.quantity})
}
