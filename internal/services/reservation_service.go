package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/broker"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/franciscosanchezn/tablekeeper/internal/validation"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReservationFilter struct {
	Date   string
	Status string
}

type ReservationService interface {
	// Create books a table unless an active reservation already holds the same slot
	Create(ctx context.Context, r *models.Reservation) error
	// List returns reservations ordered by date then time
	List(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, error)
	SetStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error)
	Delete(ctx context.Context, id string) error
	// AvailableTables lists the tables of the pool that are free at the given slot, ascending
	AvailableTables(ctx context.Context, date, slot string) ([]int, error)
	TablePoolSize() int
}

type reservationService struct {
	db        *gorm.DB
	publisher EventPublisher
	poolSize  int
}

func NewReservationService(db *gorm.DB, publisher EventPublisher, poolSize int) ReservationService {
	return &reservationService{db: db, publisher: publisher, poolSize: poolSize}
}

func (s *reservationService) TablePoolSize() int { return s.poolSize }

func (s *reservationService) Create(ctx context.Context, r *models.Reservation) error {
	if err := s.normalize(r); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := slotTaken(tx, r.Date, r.Time, r.TableNumber)
		if err != nil {
			return err
		}
		if taken {
			return ErrTableTaken
		}
		return tx.Create(r).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrTableTaken
	}
	if err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, broker.TopicReservationCreated, r); err != nil {
			logrus.WithError(err).Warn("Failed to publish reservation")
		}
	}
	return nil
}

func (s *reservationService) normalize(r *models.Reservation) error {
	date, err := validation.NormalizeDate(r.Date)
	if err != nil {
		return invalid("Invalid date format, expected YYYY-MM-DD")
	}
	slot, err := validation.NormalizeSlot(r.Time)
	if err != nil {
		return invalid("Invalid time format, expected HH:MM")
	}
	if r.TableNumber < 1 || r.TableNumber > s.poolSize {
		return invalid(fmt.Sprintf("Table number must be between 1 and %d", s.poolSize))
	}
	if r.Guests < 1 {
		return invalid("Guests must be at least 1")
	}
	r.Date = date
	r.Time = slot
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Status == "" {
		r.Status = models.ReservationPending
	}
	if !r.Status.Valid() {
		return invalid("Invalid status. Must be one of: pending, confirmed, cancelled")
	}
	return nil
}

func slotTaken(tx *gorm.DB, date, slot string, table int) (bool, error) {
	var n int64
	err := tx.Model(&models.Reservation{}).
		Where("slot_date = ? AND slot_time = ? AND table_number = ? AND status <> ?",
			date, slot, table, models.ReservationCancelled).
		Count(&n).Error
	return n > 0, err
}

func (s *reservationService) List(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error) {
	q := s.db.WithContext(ctx).Model(&models.Reservation{})
	if filter.Date != "" {
		date, err := validation.NormalizeDate(filter.Date)
		if err != nil {
			return nil, invalid("Invalid date format, expected YYYY-MM-DD")
		}
		q = q.Where("slot_date = ?", date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var out []models.Reservation
	if err := q.Order("slot_date ASC").Order("slot_time ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *reservationService) Get(ctx context.Context, id string) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

// SetStatus only writes when the row still holds the status that was checked.
// A reservation that moved in between is re-read and checked again.
func (s *reservationService) SetStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.Valid() {
		return nil, invalid("Invalid status. Must be one of: pending, confirmed, cancelled")
	}
	for attempt := 0; attempt < statusAttempts; attempt++ {
		r, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !r.Status.CanTransitionTo(status) {
			return nil, &TransitionError{From: string(r.Status), To: string(status)}
		}

		result := s.db.WithContext(ctx).Model(&models.Reservation{}).
			Where("id = ? AND status = ?", id, r.Status).
			Update("status", status)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrTableTaken
		}
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}
		r.Status = status
		return r, nil
	}
	return nil, fmt.Errorf("%w: reservation %s kept changing while it was updated", ErrInvalidTransition, id)
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reservationService) AvailableTables(ctx context.Context, date, slot string) ([]int, error) {
	if date == "" || slot == "" {
		return nil, invalid("Date and time are required")
	}
	day, err := validation.NormalizeDate(date)
	if err != nil {
		return nil, invalid("Invalid date format, expected YYYY-MM-DD")
	}
	hhmm, err := validation.NormalizeSlot(slot)
	if err != nil {
		return nil, invalid("Invalid time format, expected HH:MM")
	}

	var taken []int
	err = s.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("slot_date = ? AND slot_time = ? AND status <> ?", day, hhmm, models.ReservationCancelled).
		Distinct().Pluck("table_number", &taken).Error
	if err != nil {
		return nil, err
	}

	held := make(map[int]bool, len(taken))
	for _, t := range taken {
		held[t] = true
	}
	free := make([]int, 0, s.poolSize)
	for t := 1; t <= s.poolSize; t++ {
		if !held[t] {
			free = append(free, t)
		}
	}
	return free, nil
}
