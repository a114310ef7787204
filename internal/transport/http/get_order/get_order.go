package getorder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/services/ordersvc"
	"github.com/corray333/microservice-demo/order/internal/transport/http/converters"
	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
}

// GetOrder handles the get order by id request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		converters.WriteError(w, "invalid order id", http.StatusBadRequest)

		return
	}

	o, err := service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ordersvc.ErrOrderNotFound) {
			converters.WriteError(w, "order not found", http.StatusNotFound)

			return
		}

		converters.WriteError(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error getting order", "error", err, "id", id)

		return
	}

	converters.WriteJSON(w, http.StatusOK, converters.OrderToResponse(*o))
}
