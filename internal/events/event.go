// Package events implements the event listing API: create, list and delete events.
package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("Event not found")
	ErrDuplicateEvent = errors.New("Event with the same name and date already exists")
)

// Event is a listed event. Name and date together are unique.
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name        string    `gorm:"not null;uniqueIndex:idx_event_name_date" json:"name" bson:"name"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_event_name_date" json:"date" bson:"date"`
	Location    string    `gorm:"not null" json:"location" bson:"location"`
	Description string    `gorm:"not null" json:"description" bson:"description"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ParseDate accepts an RFC3339 timestamp or a YYYY-MM-DD day and returns it in UTC
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}
