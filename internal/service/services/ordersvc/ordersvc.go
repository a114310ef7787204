package ordersvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/corray333/microservice-demo/order/internal/dal/interfaces/iorderitemrepo"
	"github.com/corray333/microservice-demo/order/internal/dal/interfaces/iorderrepo"
	"github.com/corray333/microservice-demo/order/internal/dal/postgres"
	"github.com/corray333/microservice-demo/order/internal/dal/uow"
	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/models/orderitem"
	"github.com/corray333/microservice-demo/order/internal/service/models/product"
	"github.com/corray333/microservice-demo/order/internal/service/models/user"
	"go.opentelemetry.io/otel"
)

// OrderService is a service for managing orders.
type OrderService struct {
	pgClient      *postgres.Client
	userClient    userClient
	productClient productClient
	newUOW        func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
}

type userClient interface {
	GetUser(ctx context.Context, id int64) (*user.User, error)
}

type productClient interface {
	GetProduct(ctx context.Context, id int64) (*product.Product, error)
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUserClient sets the user service client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUserClient(client userClient) option {
	return func(s *OrderService) {
		s.userClient = client
	}
}

// WithProductClient sets the product service client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductClient(client productClient) option {
	return func(s *OrderService) {
		s.productClient = client
	}
}

// WithUnitOfWorkFactory overrides how unit of works are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// CreateOrder validates the user and every product against the upstream
// services, prices the order, and persists the aggregate in a single
// transaction. The first failed lookup aborts the whole operation; nothing
// is stored unless every step succeeds.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	userID int64,
	productIDs []int64,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "CreateOrder")
	defer span.End()

	if len(productIDs) == 0 {
		return nil, newValidationError(nil, "order request is invalid or has no products")
	}

	u, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		return nil, newValidationError(err, "user with id %d not found or user service error", userID)
	}

	var totalAmount float64
	productNames := make([]string, 0, len(productIDs))
	items := make([]orderitem.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		p, err := s.productClient.GetProduct(ctx, productID)
		if err != nil {
			return nil, newValidationError(err, "product with id %d not found or product service error", productID)
		}

		totalAmount += p.Price
		productNames = append(productNames, p.Name)
		items = append(items, orderitem.OrderItem{
			ProductID:   productID,
			ProductName: p.Name,
		})
	}

	newOrder := order.Order{
		UserID:       userID,
		UserName:     u.Name,
		TotalAmount:  totalAmount,
		OrderDate:    time.Now(),
		OrderItems:   items,
		ProductNames: productNames,
	}

	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Debug("unit of work rollback", "error", err)
		}
	}()

	inserted, err := work.OrderRepository().Insert(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	for i := range inserted.OrderItems {
		inserted.OrderItems[i].OrderID = inserted.ID
	}
	insertedItems, err := work.OrderItemRepository().BulkInsert(ctx, inserted.OrderItems)
	if err != nil {
		return nil, err
	}
	inserted.OrderItems = insertedItems

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	return inserted, nil
}

// GetOrders retrieves orders with their order items eagerly loaded.
func (s *OrderService) GetOrders(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	orderItemQuery := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		orderItemQuery.OrderIds = append(orderItemQuery.OrderIds, o.ID)
	}
	orderItems, err := work.OrderItemRepository().Query(ctx, orderItemQuery)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		for _, item := range orderItems {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
				orders[i].ProductNames = append(orders[i].ProductNames, item.ProductName)
			}
		}
	}

	return orders, nil
}

// GetOrder retrieves a single order with its items, or ErrOrderNotFound.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	orders, err := s.GetOrders(ctx, &order.QueryOrdersModel{Ids: []int64{id}})
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}

	return &orders[0], nil
}
