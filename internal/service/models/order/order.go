package order

import (
	"time"

	"github.com/corray333/microservice-demo/order/internal/service/models/orderitem"
)

// Order represents an order aggregate in the system.
type Order struct {
	ID          int64                 `json:"id"`
	UserID      int64                 `json:"userId"`
	TotalAmount float64               `json:"totalAmount"`
	OrderDate   time.Time             `json:"orderDate"`
	OrderItems  []orderitem.OrderItem `json:"orderItems"`

	// Display data resolved from the upstream services at creation time.
	// Stored with the order but never recomputed afterwards.
	UserName     string   `json:"userName"`
	ProductNames []string `json:"productNames"`
}

// ProductIds returns the product ids of the order items in storage order.
func (o *Order) ProductIds() []int64 {
	ids := make([]int64, len(o.OrderItems))
	for i, item := range o.OrderItems {
		ids[i] = item.ProductID
	}

	return ids
}
