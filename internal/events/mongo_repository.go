package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventsCollection = "events"

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) EventRepository {
	return &mongoRepository{collection: db.Collection(eventsCollection)}
}

func (r *mongoRepository) EnsureSchema(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("name_date_unique"),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("cannot create name/date index: %w", err)
	}
	return nil
}

func (r *mongoRepository) Create(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEvent
		}
		return fmt.Errorf("cannot insert event: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]Event, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("cannot list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("cannot decode events: %w", err)
	}
	return events, nil
}

func (r *mongoRepository) FindByNameAndDate(ctx context.Context, name string, date time.Time) (*Event, error) {
	var event Event
	err := r.collection.FindOne(ctx, bson.M{"name": name, "date": date}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot find event: %w", err)
	}
	return &event, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (*Event, error) {
	var event Event
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot delete event: %w", err)
	}
	return &event, nil
}
