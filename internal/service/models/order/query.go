package order

// QueryOrdersModel filters an order listing.
type QueryOrdersModel struct {
	Limit  int
	Offset int
}
