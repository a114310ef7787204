package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/models/orderitem"
	"github.com/corray333/microservice-demo/order/internal/service/services/ordersvc"
	"github.com/corray333/microservice-demo/order/internal/transport/http/converters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	orders    []order.Order
	createErr error
}

func (s *stubService) GetOrders(_ context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	if len(filter.Ids) == 0 {
		return s.orders, nil
	}

	var result []order.Order
	for _, o := range s.orders {
		for _, id := range filter.Ids {
			if o.ID == id {
				result = append(result, o)
			}
		}
	}
	return result, nil
}

func (s *stubService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	orders, err := s.GetOrders(ctx, &order.QueryOrdersModel{Ids: []int64{id}})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ordersvc.ErrOrderNotFound
	}
	return &orders[0], nil
}

func (s *stubService) CreateOrder(_ context.Context, userID int64, productIDs []int64) (*order.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	o := order.Order{
		ID:           int64(len(s.orders) + 1),
		UserID:       userID,
		TotalAmount:  14.99,
		OrderDate:    time.Now(),
		UserName:     "Alice",
		ProductNames: []string{"Widget", "Gadget"},
	}
	for i, pid := range productIDs {
		o.OrderItems = append(o.OrderItems, orderitem.OrderItem{
			ID:        int64(i + 1),
			OrderID:   o.ID,
			ProductID: pid,
		})
	}
	s.orders = append(s.orders, o)
	return &o, nil
}

func newTestTransport(svc service) *HTTPTransport {
	h := NewHTTPTransport(svc)
	h.RegisterRoutes()
	return h
}

func TestListOrders_EmptyStore(t *testing.T) {
	h := newTestTransport(&stubService{})

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	h := newTestTransport(&stubService{})

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp converters.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestGetOrder_InvalidID(t *testing.T) {
	h := newTestTransport(&stubService{})

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	svc := &stubService{}
	h := newTestTransport(svc)

	body := `{"userId": 1, "productIds": [10, 20]}`
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/orders/1", rec.Header().Get("Location"))

	var resp converters.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, 14.99, resp.TotalAmount)
	assert.Equal(t, "Alice", resp.UserName)
	assert.Equal(t, []string{"Widget", "Gadget"}, resp.ProductNames)
	assert.Equal(t, []int64{10, 20}, resp.ProductIds)
	require.Len(t, resp.OrderItems, 2)
	assert.Equal(t, int64(10), resp.OrderItems[0].ProductID)
	assert.Equal(t, int64(20), resp.OrderItems[1].ProductID)

	// The created order is retrievable at the Location URL.
	rec = httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	svc := &stubService{
		createErr: &ordersvc.ValidationError{},
	}
	h := newTestTransport(svc)

	body := `{"userId": 999, "productIds": [10]}`
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_BadJSON(t *testing.T) {
	h := newTestTransport(&stubService{})

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp converters.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestCreateOrder_InvalidUserID(t *testing.T) {
	h := newTestTransport(&stubService{})

	body := `{"userId": 0, "productIds": [10]}`
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
