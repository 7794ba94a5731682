// Package repository provides data persistence implementations for stock and reservations.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// PostgreSQLInventoryRepository handles stock persistence for PostgreSQL
type PostgreSQLInventoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLInventoryRepository creates a new PostgreSQLInventoryRepository
func NewPostgreSQLInventoryRepository(db *sql.DB) *PostgreSQLInventoryRepository {
	return &PostgreSQLInventoryRepository{
		db: db,
	}
}

// GetByProductID retrieves the stock row of a product.
func (r *PostgreSQLInventoryRepository) GetByProductID(
	ctx context.Context,
	productID int64,
) (*domain.Inventory, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id = $1`

	return scanInventory(querier.QueryRowContext(ctx, query, productID))
}

// GetByProductIDForUpdate locks the stock row until the surrounding transaction ends.
func (r *PostgreSQLInventoryRepository) GetByProductIDForUpdate(
	ctx context.Context,
	productID int64,
) (*domain.Inventory, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id = $1
			  FOR UPDATE`

	return scanInventory(querier.QueryRowContext(ctx, query, productID))
}

// ListByProductIDs returns the existing rows among productIDs ordered by product id.
func (r *PostgreSQLInventoryRepository) ListByProductIDs(
	ctx context.Context,
	productIDs []int64,
) ([]*domain.Inventory, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, product_id, available_stock, reserved_stock, created_at, updated_at
			  FROM inventory
			  WHERE product_id = ANY($1)
			  ORDER BY product_id ASC`

	rows, err := querier.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list inventory")
	}
	defer rows.Close() //nolint:errcheck

	return scanInventories(rows)
}

// AdjustStock adds the deltas to available and reserved stock. A delta that would drive
// either column below zero is rejected by the CHECK constraints.
func (r *PostgreSQLInventoryRepository) AdjustStock(
	ctx context.Context,
	productID int64,
	availableDelta, reservedDelta int,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inventory
			  SET available_stock = available_stock + $1,
			      reserved_stock = reserved_stock + $2,
			      updated_at = $3
			  WHERE product_id = $4`

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
func (r *PostgreSQLInventoryRepository) IncrementAvailable(
	ctx context.Context,
	productID int64,
	quantity int,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inventory (product_id, available_stock, reserved_stock, created_at, updated_at)
			  VALUES ($1, $2, 0, $3, $3)
			  ON CONFLICT (product_id) DO UPDATE
			  SET available_stock = inventory.available_stock + EXCLUDED.available_stock,
			      updated_at = EXCLUDED.updated_at`

	if _, err := querier.ExecContext(ctx, query, productID, quantity, time.Now().UTC()); err != nil {
		return apperrors.Wrap(err, "failed to add stock")
	}
	return nil
}

// SetAvailable overwrites available stock, inserting the row when missing.
func (r *PostgreSQLInventoryRepository) SetAvailable(
	ctx context.Context,
	productID int64,
	quantity int,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inventory (product_id, available_stock, reserved_stock, created_at, updated_at)
			  VALUES ($1, $2, 0, $3, $3)
			  ON CONFLICT (product_id) DO UPDATE
			  SET available_stock = EXCLUDED.available_stock,
			      updated_at = EXCLUDED.updated_at`

	if _, err := querier.ExecContext(ctx, query, productID, quantity, time.Now().UTC()); err != nil {
		return apperrors.Wrap(err, "failed to set stock")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventory(row rowScanner) (*domain.Inventory, error) {
	var inventory domain.Inventory

	err := row.Scan(&inventory.ID, &inventory.ProductID, &inventory.AvailableStock, &inventory.ReservedStock,
		&inventory.CreatedAt, &inventory.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get inventory")
	}

	return &inventory, nil
}

func scanInventories(rows *sql.Rows) ([]*domain.Inventory, error) {
	inventories := make([]*domain.Inventory, 0)
	for rows.Next() {
		inventory, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		inventories = append(inventories, inventory)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate inventory")
	}

	return inventories, nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
