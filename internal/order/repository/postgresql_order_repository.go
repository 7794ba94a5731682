// Package repository provides data persistence implementations for orders.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/order/domain"
)

// PostgreSQLOrderRepository handles order persistence for PostgreSQL
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrderRepository creates a new PostgreSQLOrderRepository
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{
		db: db,
	}
}

// Create inserts the order and its items, filling in the generated ids.
func (r *PostgreSQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO orders (user_id, status, total_amount, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, order.UserID, order.Status, order.TotalAmount,
		order.CreatedAt, order.UpdatedAt).Scan(&order.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, price)
				  VALUES ($1, $2, $3, $4)
				  RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err := querier.QueryRowContext(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity,
			item.Price).Scan(&item.ID)
		if err != nil {
			return apperrors.Wrap(err, "failed to create order item")
		}
	}

	return nil
}

// Get retrieves an order with its items.
func (r *PostgreSQLOrderRepository) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, status, total_amount, created_at, updated_at
			  FROM orders
			  WHERE id = $1`

	order, err := scanOrder(querier.QueryRowContext(ctx, query, orderID))
	if err != nil {
		return nil, err
	}

	itemQuery := `SELECT id, order_id, product_id, quantity, price
				  FROM order_items
				  WHERE order_id = $1
				  ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, itemQuery, orderID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query order items")
	}
	defer rows.Close() //nolint:errcheck

	items, err := scanOrderItems(rows)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetForUpdate locks the order row until the surrounding transaction ends. Items are not loaded.
func (r *PostgreSQLOrderRepository) GetForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, status, total_amount, created_at, updated_at
			  FROM orders
			  WHERE id = $1
			  FOR UPDATE`

	return scanOrder(querier.QueryRowContext(ctx, query, orderID))
}

// UpdateStatus sets the order status.
func (r *PostgreSQLOrderRepository) UpdateStatus(
	ctx context.Context,
	orderID int64,
	status domain.OrderStatus,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, status, time.Now().UTC(), orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order status")
	}

	return requireAffected(result)
}

// List returns orders by id descending, optionally filtered by user, with their items.
func (r *PostgreSQLOrderRepository) List(
	ctx context.Context,
	userID *int64,
	offset, limit int,
) ([]*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	var (
		rows *sql.Rows
		err  error
	)
	if userID != nil {
		query := `SELECT id, user_id, status, total_amount, created_at, updated_at
				  FROM orders
				  WHERE user_id = $1
				  ORDER BY id DESC
				  LIMIT $2 OFFSET $3`
		rows, err = querier.QueryContext(ctx, query, *userID, limit, offset)
	} else {
		query := `SELECT id, user_id, status, total_amount, created_at, updated_at
				  FROM orders
				  ORDER BY id DESC
				  LIMIT $1 OFFSET $2`
		rows, err = querier.QueryContext(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close() //nolint:errcheck

	orders, err := scanOrders(rows)
	if err != nil || len(orders) == 0 {
		return orders, err
	}

	ids := lo.Map(orders, func(o *domain.Order, _ int) int64 { return o.ID })

	itemQuery := `SELECT id, order_id, product_id, quantity, price
				  FROM order_items
				  WHERE order_id = ANY($1)
				  ORDER BY id ASC`

	itemRows, err := querier.QueryContext(ctx, itemQuery, pq.Array(ids))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query order items")
	}
	defer itemRows.Close() //nolint:errcheck

	items, err := scanOrderItems(itemRows)
	if err != nil {
		return nil, err
	}

	attachItems(orders, items)
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order

	err := row.Scan(&order.ID, &order.UserID, &order.Status, &order.TotalAmount,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order")
	}

	return &order, nil
}

func scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

func scanOrderItems(rows *sql.Rows) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem

		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item")
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order items")
	}

	return items, nil
}

func attachItems(orders []*domain.Order, items []domain.OrderItem) {
	byOrder := lo.GroupBy(items, func(item domain.OrderItem) int64 { return item.OrderID })
	for _, order := range orders {
		order.Items = byOrder[order.ID]
	}
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
