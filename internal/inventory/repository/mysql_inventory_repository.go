package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// MySQLInventoryRepository handles stock persistence for MySQL
type MySQLInventoryRepository struct {
	db *sql.DB
}

// NewMySQLInventoryRepository creates a new MySQLInventoryRepository
func NewMySQLInventoryRepository(db *sql.DB) *MySQLInventoryRepository {
	return &MySQLInventoryRepository{
		db: db,
	}
}

// GetByProductID retrieves the stock row of a product.
func (r *MySQLInventoryRepository) GetByProductID(ctx context.Context, productID int64) (*domain.Inventory, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id = ?`

	return scanInventory(querier.QueryRowContext(ctx, query, productID))
}

// GetByProductIDForUpdate locks the stock row until the surrounding transaction ends.
func (r *MySQLInventoryRepository) GetByProductIDForUpdate(
	ctx context.Context,
	productID int64,
) (*domain.Inventory, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id = ?
			  FOR UPDATE`

	return scanInventory(querier.QueryRowContext(ctx, query, productID))
}

// ListByProductIDs returns the existing rows among productIDs ordered by product id.
func (r *MySQLInventoryRepository) ListByProductIDs(
	ctx context.Context,
	productIDs []int64,
) ([]*domain.Inventory, error) {
	if len(productIDs) == 0 {
		return []*domain.Inventory{}, nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(productIDs)), ",")
	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id IN (` + placeholders + `)
			  ORDER BY product_id ASC`

	args := lo.Map(productIDs, func(id int64, _ int) any { return id })

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list inventory")
	}
	defer rows.Close() //nolint:errcheck

	return scanInventories(rows)
}

// AdjustStock adds the deltas to available and reserved stock.
func (r *MySQLInventoryRepository) AdjustStock(
	ctx context.Context,
	productID int64,
	availableDelta, reservedDelta int,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inventory
			  SET available_stock = available_stock + ?,
			      reserved_stock = reserved_stock + ?,
			      updated_at = ?
			  WHERE product_id = ?`

	result, err := querier.ExecContext(ctx, query, availableDelta, reservedDelta, time.Now().UTC(), productID)
	if err != nil {
		if database.IsCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return apperrors.Wrap(err, "failed to adjust stock")
	}

	return requireAffected(result, domain.ErrInventoryNotFound)
}

// IncrementAvailable adds quantity to available stock, inserting the row when missing.
func (r *MySQLInventoryRepository) IncrementAvailable(ctx context.Context, productID int64, quantity int) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO inventory (product_id, available_stock, reserved_stock, created_at, updated_at)
			  VALUES (?, ?, 0, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  available_stock = available_stock + VALUES(available_stock),
			  updated_at = VALUES(updated_at)`

	if _, err := querier.ExecContext(ctx, query, productID, quantity, now, now); err != nil {
		return apperrors.Wrap(err, "failed to add stock")
	}
	return nil
}

// SetAvailable overwrites available stock, inserting the row when missing.
func (r *MySQLInventoryRepository) SetAvailable(ctx context.Context, productID int64, quantity int) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO inventory (product_id, available_stock, reserved_stock, created_at, updated_at)
			  VALUES (?, ?, 0, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  available_stock = VALUES(available_stock),
			  updated_at = VALUES(updated_at)`

	if _, err := querier.ExecContext(ctx, query, productID, quantity, now, now); err != nil {
		return apperrors.Wrap(err, "failed to set stock")
	}
	return nil
}
