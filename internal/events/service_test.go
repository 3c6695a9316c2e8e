package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn    func(ctx context.Context, event *Event) error
	findAllFn   func(ctx context.Context) ([]Event, error)
	findByKeyFn func(ctx context.Context, name string, date time.Time) (*Event, error)
	deleteFn    func(ctx context.Context, id string) (*Event, error)
}

func (m *mockEventRepo) EnsureSchema(ctx context.Context) error { return nil }
func (m *mockEventRepo) Create(ctx context.Context, event *Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]Event, error) {
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Event, error) {
	return m.findByKeyFn(ctx, name, date)
}
func (m *mockEventRepo) Delete(ctx context.Context, id string) (*Event, error) {
	return m.deleteFn(ctx, id)
}

type mockPublisher struct {
	topics []string
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, payload any) error {
	m.topics = append(m.topics, topic)
	return nil
}

func sampleEvent() *Event {
	return &Event{
		Name:        "Jazz Night",
		Date:        time.Date(2026, 2, 20, 19, 0, 0, 0, time.UTC),
		Location:    "Main Hall",
		Description: "Live quartet",
	}
}

func notFound(ctx context.Context, name string, date time.Time) (*Event, error) {
	return nil, ErrEventNotFound
}

func TestCreateEvent_Success(t *testing.T) {
	pub := &mockPublisher{}
	repo := &mockEventRepo{
		findByKeyFn: notFound,
		createFn: func(ctx context.Context, event *Event) error {
			event.ID = "evt-1"
			return nil
		},
	}

	svc := NewEventService(repo, pub)
	event := sampleEvent()

	require.NoError(t, svc.CreateEvent(context.Background(), event))
	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, []string{"event.created"}, pub.topics)
}

func TestCreateEvent_Duplicate(t *testing.T) {
	repo := &mockEventRepo{
		findByKeyFn: func(ctx context.Context, name string, date time.Time) (*Event, error) {
			return sampleEvent(), nil
		},
	}

	err := NewEventService(repo, nil).CreateEvent(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrDuplicateEvent)
}

func TestCreateEvent_DuplicateRace(t *testing.T) {
	repo := &mockEventRepo{
		findByKeyFn: notFound,
		createFn: func(ctx context.Context, event *Event) error {
			return ErrDuplicateEvent
		},
	}

	err := NewEventService(repo, nil).CreateEvent(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrDuplicateEvent)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		findByKeyFn: notFound,
		createFn: func(ctx context.Context, event *Event) error {
			return errors.New("db down")
		},
	}

	err := NewEventService(repo, nil).CreateEvent(context.Background(), sampleEvent())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEvent)
}

func TestListEvents_EmptyIsNotNil(t *testing.T) {
	repo := &mockEventRepo{
		findAllFn: func(ctx context.Context) ([]Event, error) { return nil, nil },
	}

	events, err := NewEventService(repo, nil).ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestDeleteEvent(t *testing.T) {
	pub := &mockPublisher{}
	repo := &mockEventRepo{
		deleteFn: func(ctx context.Context, id string) (*Event, error) {
			if id != "evt-1" {
				return nil, ErrEventNotFound
			}
			e := sampleEvent()
			e.ID = id
			return e, nil
		},
	}
	svc := NewEventService(repo, pub)

	deleted, err := svc.DeleteEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "evt-1", deleted.ID)
	assert.Equal(t, []string{"event.deleted"}, pub.topics)

	_, err = svc.DeleteEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}
