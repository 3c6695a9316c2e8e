package events

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EventRepository interface {
	// EnsureSchema prepares tables or indexes, including the (name, date) uniqueness constraint
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, event *Event) error
	// FindAll returns every event sorted by date ascending
	FindAll(ctx context.Context) ([]Event, error)
	FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Event, error)
	// Delete removes the event and returns it as it was stored
	Delete(ctx context.Context, id string) (*Event, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) EventRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) EnsureSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Event{})
}

func (r *gormRepository) Create(ctx context.Context, event *Event) error {
	err := r.db.WithContext(ctx).Create(event).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEvent
	}
	return err
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *gormRepository) FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where(&Event{Name: name, Date: date}).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
