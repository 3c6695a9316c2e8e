package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConcurrentOrdersGetDistinctNumbers(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := NewOrderService(setupFileDB(t), nil, fixedClock(day))

	const n = 20
	numbers := make([]string, n)
	errs := make([]error, n)
	runTogether(n, func(i int) {
		o := newOrder()
		errs[i] = svc.Create(ctx, o)
		numbers[i] = o.OrderNumber
	})

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[numbers[i]], "order number %s handed out twice", numbers[i])
		seen[numbers[i]] = true
	}
	assert.True(t, seen["250314001"])
	assert.True(t, seen["250314020"])
}

func TestConcurrentStatusChangesNeverReviveCancelledOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(setupFileDB(t), nil, nil)

	for round := 0; round < 15; round++ {
		o := newOrder()
		require.NoError(t, svc.Create(ctx, o))

		var mu sync.Mutex
		cancelled := 0
		runTogether(8, func(i int) {
			target := models.OrderPreparing
			if i%2 == 0 {
				target = models.OrderCancelled
			}
			_, err := svc.SetStatus(ctx, o.ID, target)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			if target == models.OrderCancelled {
				mu.Lock()
				cancelled++
				mu.Unlock()
			}
		})

		final, err := svc.Get(ctx, o.ID)
		require.NoError(t, err)
		if cancelled > 0 {
			assert.Equal(t, models.OrderCancelled, final.Status, "round %d: acknowledged cancel was overwritten", round)
		}
	}
}

func TestConcurrentReservationStatusChanges(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupFileDB(t), nil, 20)

	for round := 0; round < 10; round++ {
		r := newReservation("2025-08-01", "19:00", round+1)
		require.NoError(t, svc.Create(ctx, r))

		var mu sync.Mutex
		cancelled := 0
		runTogether(6, func(i int) {
			target := models.ReservationConfirmed
			if i%2 == 0 {
				target = models.ReservationCancelled
			}
			_, err := svc.SetStatus(ctx, r.ID, target)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			if target == models.ReservationCancelled {
				mu.Lock()
				cancelled++
				mu.Unlock()
			}
		})

		final, err := svc.Get(ctx, r.ID)
		require.NoError(t, err)
		if cancelled > 0 {
			assert.Equal(t, models.ReservationCancelled, final.Status, "round %d", round)
		}
	}
}

func TestConcurrentBookingsOfOneSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupFileDB(t), nil, 20)

	const n = 20
	errs := make([]error, n)
	runTogether(n, func(i int) {
		errs[i] = svc.Create(ctx, newReservation("2025-09-12", "20:30", 4))
	})

	booked := 0
	for _, err := range errs {
		if err == nil {
			booked++
			continue
		}
		assert.ErrorIs(t, err, ErrTableTaken)
	}
	assert.Equal(t, 1, booked)
}

func TestActiveSlotIndex(t *testing.T) {
	db := setupTestDB(t)

	first := newReservation("2025-10-01", "18:00", 2)
	first.Status = models.ReservationPending
	require.NoError(t, db.Create(first).Error)

	second := newReservation("2025-10-01", "18:00", 2)
	second.Status = models.ReservationConfirmed
	assert.ErrorIs(t, db.Create(second).Error, gorm.ErrDuplicatedKey)

	stale := newReservation("2025-10-01", "18:00", 2)
	stale.Status = models.ReservationCancelled
	require.NoError(t, db.Create(stale).Error, "cancelled rows stay out of the index")

	require.NoError(t, db.Model(first).Update("status", models.ReservationCancelled).Error)
	rebook := newReservation("2025-10-01", "18:00", 2)
	rebook.Status = models.ReservationPending
	assert.NoError(t, db.Create(rebook).Error)
}
