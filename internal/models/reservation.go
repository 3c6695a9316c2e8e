package models

import "time"

// ReservationStatus is the booking lifecycle of a table reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled},
	ReservationCancelled: {},
}

func (s ReservationStatus) Valid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

// CanTransitionTo mirrors OrderStatus.CanTransitionTo for reservations
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation books one table for one time slot on one day.
// Date is stored as YYYY-MM-DD and Time as HH:MM so equality and ordering are plain string comparisons.
type Reservation struct {
	Base
	CustomerName    string            `gorm:"not null" json:"customerName"`
	Email           string            `gorm:"not null" json:"email"`
	Phone           string            `gorm:"not null" json:"phone"`
	Date            string            `gorm:"column:slot_date;size:10;not null;uniqueIndex:idx_active_slot,where:status <> 'cancelled'" json:"date"`
	Time            string            `gorm:"column:slot_time;size:5;not null;uniqueIndex:idx_active_slot" json:"time"`
	Guests          int               `gorm:"not null" json:"guests"`
	TableNumber     int               `gorm:"not null;uniqueIndex:idx_active_slot" json:"tableNumber"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	Status          ReservationStatus `gorm:"not null;default:pending;index" json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
