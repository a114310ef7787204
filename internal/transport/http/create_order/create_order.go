package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/services/ordersvc"
	"github.com/corray333/microservice-demo/order/internal/transport/http/converters"
	"github.com/go-playground/validator/v10"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, userID int64, productIDs []int64) (*order.Order, error)
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	UserID     int64   `json:"userId"     validate:"gt=0"`
	ProductIds []int64 `json:"productIds" validate:"dive,gt=0"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		converters.WriteError(w, "failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		converters.WriteError(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.UserID, req.ProductIds)
	if err != nil {
		var validationErr *ordersvc.ValidationError
		if errors.As(err, &validationErr) {
			converters.WriteError(w, validationErr.Error(), http.StatusBadRequest)
			slog.Error("Order validation failed", "error", err)

			return
		}

		converters.WriteError(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error creating order", "error", err)

		return
	}

	w.Header().Set("Location", fmt.Sprintf("/orders/%d", created.ID))
	converters.WriteJSON(w, http.StatusCreated, converters.OrderToResponse(*created))
}
