package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/tablekeeper/internal/broker"
	"github.com/sirupsen/logrus"
)

// Publisher is the broker surface the service needs
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type EventService interface {
	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) (*Event, error)
}

type eventService struct {
	repo      EventRepository
	publisher Publisher
}

// NewEventService wires the service. A nil publisher disables broker notifications.
func NewEventService(repo EventRepository, publisher Publisher) EventService {
	return &eventService{repo: repo, publisher: publisher}
}

func (s *eventService) ListEvents(ctx context.Context) ([]Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *Event) error {
	_, err := s.repo.FindByNameAndDate(ctx, event.Name, event.Date)
	if err == nil {
		return ErrDuplicateEvent
	}
	if !errors.Is(err, ErrEventNotFound) {
		return fmt.Errorf("check duplicate event: %w", err)
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, ErrDuplicateEvent) {
			return err
		}
		return fmt.Errorf("create event: %w", err)
	}

	s.publish(ctx, broker.TopicEventCreated, event)
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) (*Event, error) {
	event, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}

	s.publish(ctx, broker.TopicEventDeleted, event)
	return event, nil
}

func (s *eventService) publish(ctx context.Context, topic string, event *Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("Failed to publish event")
	}
}
