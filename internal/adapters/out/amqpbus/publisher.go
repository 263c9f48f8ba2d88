// Package amqpbus fans committed domain events out to a RabbitMQ topic
// exchange. Publishing is best-effort: the ledger has already committed by
// the time an event reaches the bus, so failures are logged and swallowed.
package amqpbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"supplychain/internal/core/domain/model/order"
)

// ExchangeName is the topic exchange all supply chain events go to.
// Routing keys are the event names ("OrderPlaced", "OrderCompleted", ...).
const ExchangeName = "supplychain_events"

// channel is the slice of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher implements ports.EventNotifier over an AMQP channel.
type Publisher struct {
	ch     channel
	logger *slog.Logger
}

// NewPublisher creates a publisher over an already-opened channel. The
// exchange must have been declared (see Dial).
func NewPublisher(ch channel, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, logger: logger}
}

// Dial connects to the broker, opens a channel, and declares the topic
// exchange. The caller owns the returned connection and closes it on
// shutdown.
func Dial(url string, logger *slog.Logger) (*Publisher, *amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	if err = ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	return NewPublisher(ch, logger), conn, nil
}

// Publish serializes the event and publishes it with the event name as the
// routing key. A broker failure is logged and reported to the caller, who
// is free to ignore it: the state change already committed.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	body, err := json.Marshal(payloadFor(event))
	if err != nil {
		p.logger.Error("marshal event", "event", event.Name(), "order_id", event.OrderID(), "error", err)
		return err
	}

	err = p.ch.PublishWithContext(
		ctx,
		ExchangeName,
		event.Name(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("publish event", "event", event.Name(), "order_id", event.OrderID(), "error", err)
		return err
	}

	p.logger.Debug("event published", "event", event.Name(), "order_id", event.OrderID())
	return nil
}

// payloadFor flattens an event into its wire shape.
func payloadFor(event order.Event) map[string]any {
	payload := map[string]any{
		"event":    event.Name(),
		"order_id": event.OrderID(),
	}

	switch e := event.(type) {
	case order.PlacedEvent:
		payload["customer"] = e.Customer.String()
		payload["price"] = e.Price.String()
	case order.PreparingEvent:
		payload["cook"] = e.Cook.String()
	case order.InDeliveryEvent:
		payload["delivery_man"] = e.DeliveryMan.String()
	}

	return payload
}
