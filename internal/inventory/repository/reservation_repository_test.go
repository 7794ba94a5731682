package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ordersaga/internal/inventory/domain"
)

var reservationColumns = []string{"id", "order_id", "product_id", "quantity", "status", "expires_at", "created_at"}

func newTestReservation(now time.Time) *domain.Reservation {
	return &domain.Reservation{
		OrderID:   7001,
		ProductID: 1,
		Quantity:  3,
		Status:    domain.ReservationStatusReserved,
		ExpiresAt: now.Add(15 * time.Minute),
		CreatedAt: now,
	}
}

func TestPostgreSQLReservationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLReservationRepository(db)
	now := time.Now().UTC()
	reservation := newTestReservation(now)

	mock.ExpectQuery("INSERT INTO inventory_reservations").
		WithArgs(int64(7001), int64(1), 3, domain.ReservationStatusReserved, reservation.ExpiresAt, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err := repo.Create(context.Background(), reservation)

	require.NoError(t, err)
	assert.Equal(t, int64(11), reservation.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLReservationRepository_ExistsForOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLReservationRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM inventory_reservations WHERE order_id = $1)")).
			WithArgs(int64(7001)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.ExistsForOrder(context.Background(), 7001)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Error: query fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLReservationRepository(db)
		dbErr := errors.New("connection reset")

		mock.ExpectQuery("SELECT EXISTS").WillReturnError(dbErr)

		_, err := repo.ExistsForOrder(context.Background(), 7001)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPostgreSQLReservationRepository_ListReservedForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLReservationRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE order_id = $1 AND status = $2 ORDER BY product_id ASC FOR UPDATE",
	)).
		WithArgs(int64(7001), domain.ReservationStatusReserved).
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow(11, 7001, 1, 3, "RESERVED", now, now).
			AddRow(12, 7001, 2, 1, "RESERVED", now, now))

	reservations, err := repo.ListReservedForUpdate(context.Background(), 7001)

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, int64(1), reservations[0].ProductID)
	assert.Equal(t, domain.ReservationStatusReserved, reservations[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLReservationRepository_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLReservationRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE inventory_reservations SET status = $1 WHERE id = $2")).
			WithArgs(domain.ReservationStatusConfirmed, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), 11, domain.ReservationStatusConfirmed))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error: no rows affected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLReservationRepository(db)

		mock.ExpectExec("UPDATE inventory_reservations").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 11, domain.ReservationStatusCancelled)

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestPostgreSQLReservationRepository_ListExpiredOrderIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLReservationRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT DISTINCT order_id FROM inventory_reservations WHERE status = $1 AND expires_at < $2 ORDER BY order_id ASC LIMIT $3",
	)).
		WithArgs(domain.ReservationStatusReserved, now, 100).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(7001).AddRow(7002))

	ids, err := repo.ListExpiredOrderIDs(context.Background(), now, 100)

	require.NoError(t, err)
	assert.Equal(t, []int64{7001, 7002}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLReservationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLReservationRepository(db)
	now := time.Now().UTC()
	reservation := newTestReservation(now)

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs(int64(7001), int64(1), 3, domain.ReservationStatusReserved, reservation.ExpiresAt, now).
		WillReturnResult(sqlmock.NewResult(11, 1))

	err := repo.Create(context.Background(), reservation)

	require.NoError(t, err)
	assert.Equal(t, int64(11), reservation.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLReservationRepository_ListReservedForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLReservationRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE order_id = ? AND status = ? ORDER BY product_id ASC FOR UPDATE")).
		WithArgs(int64(7001), domain.ReservationStatusReserved).
		WillReturnRows(sqlmock.NewRows(reservationColumns).AddRow(11, 7001, 1, 3, "RESERVED", now, now))

	reservations, err := repo.ListReservedForUpdate(context.Background(), 7001)

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, int64(11), reservations[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLReservationRepository_ListExpiredOrderIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLReservationRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ? AND expires_at < ? ORDER BY order_id ASC LIMIT ?")).
		WithArgs(domain.ReservationStatusReserved, now, 10).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(7003))

	ids, err := repo.ListExpiredOrderIDs(context.Background(), now, 10)

	require.NoError(t, err)
	assert.Equal(t, []int64{7003}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLReservationRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLReservationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE inventory_reservations SET status = ? WHERE id = ?")).
		WithArgs(domain.ReservationStatusCancelled, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 11, domain.ReservationStatusCancelled))
	assert.NoError(t, mock.ExpectationsWereMet())
}
