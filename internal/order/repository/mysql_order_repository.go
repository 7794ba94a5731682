package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/order/domain"
)

// MySQLOrderRepository handles order persistence for MySQL
type MySQLOrderRepository struct {
	db *sql.DB
}

// NewMySQLOrderRepository creates a new MySQLOrderRepository
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db: db,
	}
}

// Create inserts the order and its items, filling in the generated ids.
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	query := `INSERT INTO orders (user_id, status, total_amount, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, order.UserID, order.Status, order.TotalAmount,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	order.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get order id")
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, quantity, price)
				  VALUES (?, ?, ?, ?)`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		result, err := querier.ExecContext(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return apperrors.Wrap(err, "failed to create order item")
		}

		item.ID, err = result.LastInsertId()
		if err != nil {
			return apperrors.Wrap(err, "failed to get order item id")
		}
	}

	return nil
}

// Get retrieves an order with its items.
func (r *MySQLOrderRepository) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, status, total_amount, created_at, updated_at
			  FROM orders
			  WHERE id = ?`

	order, err := scanOrder(querier.QueryRowContext(ctx, query, orderID))
	if err != nil {
		return nil, err
	}

	itemQuery := `SELECT id, order_id, product_id, quantity, price
				  FROM order_items
				  WHERE order_id = ?
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
func (r *MySQLOrderRepository) GetForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, status, total_amount, created_at, updated_at
			  FROM orders
			  WHERE id = ?
			  FOR UPDATE`

	return scanOrder(querier.QueryRowContext(ctx, query, orderID))
}

// UpdateStatus sets the order status.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, status, time.Now().UTC(), orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order status")
	}

	return requireAffected(result)
}

// List returns orders by id descending, optionally filtered by user, with their items.
func (r *MySQLOrderRepository) List(
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
				  WHERE user_id = ?
				  ORDER BY id DESC
				  LIMIT ? OFFSET ?`
		rows, err = querier.QueryContext(ctx, query, *userID, limit, offset)
	} else {
		query := `SELECT id, user_id, status, total_amount, created_at, updated_at
				  FROM orders
				  ORDER BY id DESC
				  LIMIT ? OFFSET ?`
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

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(orders)), ",")
	itemQuery := `SELECT id, order_id, product_id, quantity, price
				  FROM order_items
				  WHERE order_id IN (` + placeholders + `)
				  ORDER BY id ASC`

	args := lo.Map(orders, func(o *domain.Order, _ int) any { return o.ID })

	itemRows, err := querier.QueryContext(ctx, itemQuery, args...)
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
