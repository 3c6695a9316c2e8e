package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservation(date, slot string, table int) *models.Reservation {
	return &models.Reservation{
		CustomerName: "Grace Hopper",
		Email:        "grace@example.com",
		Phone:        "612345678",
		Date:         date,
		Time:         slot,
		Guests:       2,
		TableNumber:  table,
	}
}

func TestReservationConflict(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := NewReservationService(setupTestDB(t), pub, 20)

	first := newReservation("2025-06-01", "19:00", 5)
	require.NoError(t, svc.Create(ctx, first))
	assert.Equal(t, models.ReservationPending, first.Status)
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "reservations.created", pub.messages[0].topic)

	clash := newReservation("2025-06-01T10:00:00Z", "19:00", 5)
	assert.ErrorIs(t, svc.Create(ctx, clash), ErrTableTaken)

	otherTable := newReservation("2025-06-01", "19:00", 6)
	assert.NoError(t, svc.Create(ctx, otherTable))

	otherSlot := newReservation("2025-06-01", "20:00", 5)
	assert.NoError(t, svc.Create(ctx, otherSlot))

	_, err := svc.SetStatus(ctx, first.ID, models.ReservationCancelled)
	require.NoError(t, err)

	rebook := newReservation("2025-06-01", "19:00", 5)
	assert.NoError(t, svc.Create(ctx, rebook), "cancelled reservations free their table")
}

func TestReservationValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupTestDB(t), nil, 20)

	assert.ErrorIs(t, svc.Create(ctx, newReservation("2025-06-01", "19:00", 21)), ErrInvalidInput)
	assert.ErrorIs(t, svc.Create(ctx, newReservation("2025-06-01", "19:00", 0)), ErrInvalidInput)
	assert.ErrorIs(t, svc.Create(ctx, newReservation("June 1st", "19:00", 1)), ErrInvalidInput)
	assert.ErrorIs(t, svc.Create(ctx, newReservation("2025-06-01", "7pm", 1)), ErrInvalidInput)

	noGuests := newReservation("2025-06-01", "19:00", 1)
	noGuests.Guests = 0
	assert.ErrorIs(t, svc.Create(ctx, noGuests), ErrInvalidInput)
}

func TestAvailableTables(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupTestDB(t), nil, 20)

	for _, table := range []int{2, 5, 9} {
		require.NoError(t, svc.Create(ctx, newReservation("2025-06-01", "13:00", table)))
	}
	cancelled := newReservation("2025-06-01", "13:00", 11)
	require.NoError(t, svc.Create(ctx, cancelled))
	_, err := svc.SetStatus(ctx, cancelled.ID, models.ReservationCancelled)
	require.NoError(t, err)
	require.NoError(t, svc.Create(ctx, newReservation("2025-06-01", "14:00", 1)))

	free, err := svc.AvailableTables(ctx, "2025-06-01", "13:00")
	require.NoError(t, err)
	assert.Len(t, free, 17)
	assert.NotContains(t, free, 2)
	assert.NotContains(t, free, 5)
	assert.NotContains(t, free, 9)
	assert.Contains(t, free, 11)
	assert.Contains(t, free, 1)
	assert.Equal(t, 1, free[0])
	assert.Equal(t, 20, free[len(free)-1])

	_, err = svc.AvailableTables(ctx, "", "13:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AvailableTables(ctx, "2025-06-01", "lunch")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReservationStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupTestDB(t), nil, 20)

	r := newReservation("2025-07-04", "18:00", 3)
	require.NoError(t, svc.Create(ctx, r))

	confirmed, err := svc.SetStatus(ctx, r.ID, models.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, confirmed.Status)

	_, err = svc.SetStatus(ctx, r.ID, models.ReservationPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, r.ID, "seated")
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.List(ctx, ReservationFilter{Date: "2025-07-04"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, r.ID))
	assert.ErrorIs(t, svc.Delete(ctx, r.ID), ErrNotFound)
	_, err = svc.SetStatus(ctx, r.ID, models.ReservationCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReservationListOrdering(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(setupTestDB(t), nil, 20)

	require.NoError(t, svc.Create(ctx, newReservation("2025-06-02", "12:00", 1)))
	require.NoError(t, svc.Create(ctx, newReservation("2025-06-01", "19:00", 1)))
	require.NoError(t, svc.Create(ctx, newReservation("2025-06-01", "12:00", 1)))

	list, err := svc.List(ctx, ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-06-01", list[0].Date)
	assert.Equal(t, "12:00", list[0].Time)
	assert.Equal(t, "19:00", list[1].Time)
	assert.Equal(t, "2025-06-02", list[2].Date)
}
