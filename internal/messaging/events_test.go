package messaging

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("Success: order created", func(t *testing.T) {
		payload := []byte(`{"orderId":7001,"userId":42,"totalAmount":"30.00","items":[{"productId":1,"quantity":3}]}`)

		event, err := DecodeEvent(TopicOrderCreated, payload)

		require.NoError(t, err)
		created, ok := event.(*OrderCreated)
		require.True(t, ok)
		assert.Equal(t, int64(7001), created.OrderID)
		assert.Equal(t, int64(42), created.UserID)
		assert.True(t, decimal.RequireFromString("30").Equal(created.TotalAmount))
		assert.Equal(t, []OrderItem{{ProductID: 1, Quantity: 3}}, created.Items)
	})

	t.Run("Success: numeric amount", func(t *testing.T) {
		event, err := DecodeEvent(TopicInventoryReserved, []byte(`{"orderId":1,"totalAmount":12.5}`))

		require.NoError(t, err)
		reserved := event.(*InventoryReserved)
		assert.True(t, decimal.RequireFromString("12.5").Equal(reserved.TotalAmount))
	})

	t.Run("Error: unknown topic is poison", func(t *testing.T) {
		_, err := DecodeEvent("unknown-topic", []byte(`{}`))

		assert.ErrorIs(t, err, ErrPoison)
	})

	t.Run("Error: malformed payload is poison", func(t *testing.T) {
		_, err := DecodeEvent(TopicPaymentSuccess, []byte(`{not json`))

		assert.ErrorIs(t, err, ErrPoison)
	})
}

func TestDecode(t *testing.T) {
	event, err := Decode[PaymentFailed]([]byte(`{"orderId":9,"reason":"declined"}`))
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed{OrderID: 9, Reason: "declined"}, event)

	_, err = Decode[PaymentFailed]([]byte(`[]`))
	assert.ErrorIs(t, err, ErrPoison)
}

func TestContractVersion(t *testing.T) {
	assert.Equal(t, "v1", ContractVersion(TopicOrderCreated))
	assert.Equal(t, DefaultContractVersion, ContractVersion("not-registered"))
}

func TestDLTTopic(t *testing.T) {
	assert.Equal(t, "order-created.DLT", DLTTopic(TopicOrderCreated))
	assert.Equal(t, TopicOrderCreated, OriginalTopic("order-created.DLT"))
	assert.Equal(t, TopicOrderCreated, OriginalTopic(TopicOrderCreated))
}
