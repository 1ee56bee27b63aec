package domain

// CartItem is a product snapshot plus the quantity the customer selected.
// The snapshot is copied at add time and does not track later product edits.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
