package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderPending, OrderPreparing, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderCompleted, false},
		{OrderPreparing, OrderCompleted, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderPreparing, OrderPending, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCancelled, OrderPending, false},
		{OrderPending, OrderPending, true},
		{OrderStatus("lost"), OrderStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, OrderCompleted.IsTerminal())
	assert.True(t, OrderCancelled.IsTerminal())
	assert.False(t, OrderPending.IsTerminal())
}

func TestReservationStatusTransitions(t *testing.T) {
	assert.True(t, ReservationPending.CanTransitionTo(ReservationConfirmed))
	assert.True(t, ReservationConfirmed.CanTransitionTo(ReservationCancelled))
	assert.False(t, ReservationConfirmed.CanTransitionTo(ReservationPending))
	assert.False(t, ReservationCancelled.CanTransitionTo(ReservationConfirmed))
	assert.False(t, ReservationStatus("maybe").Valid())
}

func TestOrderHelpers(t *testing.T) {
	o := Order{Items: []OrderItem{{Name: "Soup", Price: 4.5, Quantity: 2}, {Name: "Tea", Price: 1.1, Quantity: 3}}}
	assert.Equal(t, 12.3, o.ItemsTotal())

	o.Type = OrderTypeDineIn
	assert.Error(t, o.CheckTable())
	table := 4
	o.Table = &table
	assert.NoError(t, o.CheckTable())
	o.Type = OrderTypeDelivery
	assert.Error(t, o.CheckTable())

	assert.Equal(t, "251019007", FormatOrderNumber("251019", 7))
	assert.Equal(t, "2510191234", FormatOrderNumber("251019", 1234))
}

func TestUserPassword(t *testing.T) {
	u := User{Password: "s3cret!"}
	assert.NoError(t, u.HashPassword())
	assert.NotEqual(t, "s3cret!", u.Password)
	assert.True(t, u.CheckPassword("s3cret!"))
	assert.False(t, u.CheckPassword("wrong"))
}
