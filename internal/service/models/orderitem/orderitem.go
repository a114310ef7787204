package orderitem

// OrderItem represents a single product line within an order. The link to
// the owning order is the OrderID foreign key; there is no parent pointer.
type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
}
