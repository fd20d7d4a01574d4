package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartPayload struct {
	UserID     string  `json:"user_id"`
	TotalItems int     `json:"total_items"`
	Subtotal   float64 `json:"subtotal"`
}

func TestNewEvent(t *testing.T) {
	payload := cartPayload{UserID: "u1", TotalItems: 3, Subtotal: 109.97}

	event, err := NewEvent("storefront.cart.updated", "u1", "cart", "storefront", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "storefront.cart.updated", event.EventType)
	assert.Equal(t, "u1", event.AggregateID)
	assert.Equal(t, "cart", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Second)
}

func TestEvent_DataRoundTrip(t *testing.T) {
	payload := cartPayload{UserID: "u1", TotalItems: 2, Subtotal: 59.98}

	event, err := NewEvent("storefront.cart.updated", "u1", "cart", "storefront", payload)
	require.NoError(t, err)

	data, err := event.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)

	var got cartPayload
	require.NoError(t, decoded.UnmarshalData(&got))
	assert.Equal(t, payload, got)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("storefront.cart.cleared", "u1", "cart", "storefront", cartPayload{UserID: "u1"})
	require.NoError(t, err)

	event.WithCorrelationID("corr-1")
	assert.Equal(t, "corr-1", event.CorrelationID)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("x", "1", "cart", "storefront", make(chan int))
	assert.Error(t, err)
}
