package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allStatuses := []OrderStatus{
		OrderStatusCreated,
		OrderStatusAccepted,
		OrderStatusDelivered,
		OrderStatusRejectByCustomer,
		OrderStatusRejectByMerchant,
	}

	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusCreated:  {OrderStatusAccepted, OrderStatusRejectByCustomer, OrderStatusRejectByMerchant},
		OrderStatusAccepted: {OrderStatusDelivered, OrderStatusRejectByCustomer, OrderStatusRejectByMerchant},
		// Terminal states allow nothing.
		OrderStatusDelivered:        {},
		OrderStatusRejectByCustomer: {},
		OrderStatusRejectByMerchant: {},
	}

	for from, targets := range allowed {
		allowedSet := make(map[OrderStatus]bool, len(targets))
		for _, target := range targets {
			allowedSet[target] = true
		}

		for _, to := range allStatuses {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestOrderStatus_NoTransitionBackToCreated(t *testing.T) {
	for _, from := range []OrderStatus{
		OrderStatusAccepted,
		OrderStatusDelivered,
		OrderStatusRejectByCustomer,
		OrderStatusRejectByMerchant,
	} {
		assert.False(t, from.CanTransitionTo(OrderStatusCreated), "from %s", from)
	}
}

func TestOrderStatus_RequiresReason(t *testing.T) {
	assert.True(t, OrderStatusRejectByCustomer.RequiresReason())
	assert.True(t, OrderStatusRejectByMerchant.RequiresReason())
	assert.False(t, OrderStatusCreated.RequiresReason())
	assert.False(t, OrderStatusAccepted.RequiresReason())
	assert.False(t, OrderStatusDelivered.RequiresReason())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusCreated.IsValid())
	assert.True(t, OrderStatusRejectByMerchant.IsValid())
	assert.False(t, OrderStatus("SHIPPED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
