package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/microservice-demo/order/internal/service/models/order"
	"github.com/corray333/microservice-demo/order/internal/service/models/orderitem"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrderDal represents order data access layer model
type OrderDal struct {
	Id          int64     `db:"id"`
	UserId      int64     `db:"user_id"`
	UserName    string    `db:"user_name"`
	TotalAmount float64   `db:"total_amount"`
	OrderDate   time.Time `db:"order_date"`
}

// ToModel converts OrderDal to service layer Order model
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:          o.Id,
		UserID:      o.UserId,
		UserName:    o.UserName,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		OrderItems:  []orderitem.OrderItem{}, // Will be populated separately
	}
}

// OrderDalFromModel converts service layer Order model to OrderDal
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:          o.ID,
		UserId:      o.UserID,
		UserName:    o.UserName,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert stores a single order row and returns it with the generated id.
// Order items are inserted separately within the same unit of work.
func (r *PostgresOrderRepository) Insert(
	ctx context.Context,
	o order.Order,
) (*order.Order, error) {
	dal := OrderDalFromModel(&o)

	sql, args, err := r.sb.
		Insert("orders").
		Columns("user_id", "user_name", "total_amount", "order_date").
		Values(dal.UserId, dal.UserName, dal.TotalAmount, dal.OrderDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&dal.Id); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	model := dal.ToModel()
	model.OrderItems = append(model.OrderItems, o.OrderItems...)
	model.ProductNames = o.ProductNames

	return model, nil
}

// Query retrieves orders based on filter criteria
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select("id", "user_id", "user_name", "total_amount", "order_date").
		From("orders")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.UserIds) > 0 {
		query = query.Where(sq.Eq{"user_id": filter.UserIds})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.UserId,
			&dal.UserName,
			&dal.TotalAmount,
			&dal.OrderDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
