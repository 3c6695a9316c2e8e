// Package broker publishes domain events to a message broker.
package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Topics
const (
	TopicEventCreated       = "event.created"
	TopicEventDeleted       = "event.deleted"
	TopicOrderCreated       = "orders.created"
	TopicOrderUpdated       = "orders.updated"
	TopicOrderDeleted       = "orders.deleted"
	TopicReservationCreated = "reservations.created"
)

// Publisher sends a JSON encoded payload to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close() error
}

// New returns the publisher selected by driver: none, rabbitmq or nats
func New(driver, url string) (Publisher, error) {
	switch strings.ToLower(driver) {
	case "", "none":
		return Noop{}, nil
	case "rabbitmq", "amqp":
		p, err := NewRabbitMQPublisher(url)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "nats":
		p, err := NewNATSPublisher(url)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported broker driver: %s (supported: none, rabbitmq, nats)", driver)
	}
}

// Noop drops every message
type Noop struct{}

func (Noop) Publish(ctx context.Context, topic string, payload any) error {
	logrus.WithField("topic", topic).Debug("Broker disabled, dropping message")
	return nil
}

func (Noop) Close() error { return nil }
