package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Publisher emits application state-change events. Publication is a
// fire-and-forget side effect: the in-memory state stays authoritative
// whether or not the event reaches the broker.
type Publisher interface {
	Publish(event string, payload interface{})
	Close() error
}

// Event names published by the store.
const (
	EventProfileSaved    = "profile.saved"
	EventProfileDeleted  = "profile.deleted"
	EventMealConsumed    = "log.meal_consumed"
	EventDailyLogReset   = "log.reset"
	EventRecipeSubmitted = "recipe.submitted"
	EventRecipeModerated = "recipe.moderated"
	EventRecipeRated     = "recipe.rated"
	EventRecipeCommented = "recipe.commented"
	EventRecipeReported  = "recipe.reported"
	EventShoppingChanged = "shopping.changed"
)

type amqpPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewAMQPPublisher connects to RabbitMQ and declares a topic exchange for
// state-change events.
func NewAMQPPublisher(url, exchange string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &amqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

func (p *amqpPublisher) Publish(event string, payload interface{}) {
	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"payload":   payload,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("Warning: failed to marshal event %s: %v", event, err)
		return
	}

	err = p.channel.Publish(
		p.exchange, // exchange
		event,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Printf("Warning: failed to publish event %s: %v", event, err)
	}
}

func (p *amqpPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	return p.conn.Close()
}

type discardPublisher struct{}

func (discardPublisher) Publish(string, interface{}) {}
func (discardPublisher) Close() error                { return nil }

// Discard is a no-op publisher used when no broker is configured.
var Discard Publisher = discardPublisher{}
