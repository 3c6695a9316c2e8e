package services

import (
	"context"

	"github.com/franciscosanchezn/tablekeeper/internal/broker"
	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/sirupsen/logrus"
)

type OrderChange string

const (
	OrderCreated OrderChange = "created"
	OrderUpdated OrderChange = "updated"
	OrderDeleted OrderChange = "deleted"
)

var orderTopics = map[OrderChange]string{
	OrderCreated: broker.TopicOrderCreated,
	OrderUpdated: broker.TopicOrderUpdated,
	OrderDeleted: broker.TopicOrderDeleted,
}

// OrderNotifier is told about every committed order change
type OrderNotifier interface {
	OrderChanged(ctx context.Context, change OrderChange, order models.Order)
}

// Notifiers fans a change out to several notifiers
type Notifiers []OrderNotifier

func (n Notifiers) OrderChanged(ctx context.Context, change OrderChange, order models.Order) {
	for _, notifier := range n {
		if notifier != nil {
			notifier.OrderChanged(ctx, change, order)
		}
	}
}

// EventPublisher is the subset of a broker publisher the services need
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// BrokerNotifier publishes order changes as orders.<change> messages
type BrokerNotifier struct {
	Publisher EventPublisher
}

func (b BrokerNotifier) OrderChanged(ctx context.Context, change OrderChange, order models.Order) {
	if b.Publisher == nil {
		return
	}
	topic := orderTopics[change]
	if err := b.Publisher.Publish(ctx, topic, order); err != nil {
		logrus.WithError(err).WithField("topic", topic).Warn("Failed to publish order change")
	}
}
