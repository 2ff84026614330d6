package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o order.Order, meta Metadata) error
	PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status, meta Metadata) error
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitPublisher struct {
	ch  channel
	now func() time.Time
}

func NewRabbitPublisher(conn *amqp.Connection) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the exchange so publish never fails due to missing infra
	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare %s: %w", EventsExchange, err)
	}

	return &RabbitPublisher{ch: ch, now: time.Now}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, o order.Order, meta Metadata) error {
	env := newEnvelope(OrderPlacedEvent, 1, o.ID, meta, p.now(), orderPlacedPayload(o))

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", OrderPlacedEvent, err)
	}
	return p.publishJSON(ctx, OrderPlacedRoutingKey, env.EventID, body)
}

func (p *RabbitPublisher) PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status, meta Metadata) error {
	env := newEnvelope(OrderStatusChangedEvent, 1, orderID, meta, p.now(), OrderStatusChangedPayload{
		OrderID: orderID,
		Status:  status,
	})

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", OrderStatusChangedEvent, err)
	}
	return p.publishJSON(ctx, OrderStatusChangedRoutingKey, env.EventID, body)
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey, messageID string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    p.now().UTC(),
			Body:         body,
		},
	)
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, order.Order, Metadata) error { return nil }

func (NopPublisher) PublishOrderStatusChanged(context.Context, string, order.Status, Metadata) error {
	return nil
}
