package converters

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/models/orderitem"
)

// OrderItemResponse is the wire shape of an order item. The parent edge is
// never serialized; orderId is the only link back to the order.
type OrderItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	OrderID   int64 `json:"orderId"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	TotalAmount  float64             `json:"totalAmount"`
	OrderDate    time.Time           `json:"orderDate"`
	OrderItems   []OrderItemResponse `json:"orderItems"`
	UserName     string              `json:"userName"`
	ProductNames []string            `json:"productNames"`
	ProductIds   []int64             `json:"productIds"`
}

// ErrorResponse is the wire shape of an error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// OrderItemToResponse converts an order item model to its wire shape.
func OrderItemToResponse(item orderitem.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		OrderID:   item.OrderID,
	}
}

// OrderToResponse converts an order model to its wire shape. ProductIds is
// derived from the order items.
func OrderToResponse(o order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.OrderItems))
	for i, item := range o.OrderItems {
		items[i] = OrderItemToResponse(item)
	}

	productNames := o.ProductNames
	if productNames == nil {
		productNames = []string{}
	}

	return OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate,
		OrderItems:   items,
		UserName:     o.UserName,
		ProductNames: productNames,
		ProductIds:   o.ProductIds(),
	}
}

// OrdersToResponse converts a slice of order models to wire shapes.
func OrdersToResponse(orders []order.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, o := range orders {
		result[i] = OrderToResponse(o)
	}

	return result
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

// WriteError writes a JSON error body with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message})
}
