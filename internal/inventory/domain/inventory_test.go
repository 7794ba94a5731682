package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItems(t *testing.T) {
	t.Run("merges duplicates and sorts by product id", func(t *testing.T) {
		items := []StockItem{
			{ProductID: 3, Quantity: 1},
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 4},
			{ProductID: 2, Quantity: 1},
		}

		got := NormalizeItems(items)

		assert.Equal(t, []StockItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
			{ProductID: 3, Quantity: 5},
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeItems(nil))
	})
}

func TestReservation_IsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		reservation Reservation
		expected    bool
	}{
		{
			name:        "reserved and past expiry",
			reservation: Reservation{Status: ReservationStatusReserved, ExpiresAt: now.Add(-time.Second)},
			expected:    true,
		},
		{
			name:        "reserved and not yet expired",
			reservation: Reservation{Status: ReservationStatusReserved, ExpiresAt: now.Add(time.Minute)},
			expected:    false,
		},
		{
			name:        "confirmed reservations never expire",
			reservation: Reservation{Status: ReservationStatusConfirmed, ExpiresAt: now.Add(-time.Hour)},
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.reservation.IsExpired(now))
		})
	}
}
