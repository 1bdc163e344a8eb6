package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

const exchangeKindTopic = "topic"

// amqpChannel is the subset of *amqp.Channel used for publishing.
type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher implements EventPublisher on a RabbitMQ exchange.
type amqpPublisher struct {
	conn       *amqp.Connection
	channel    amqpChannel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewAMQPPublisher dials RabbitMQ and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange, routingKey string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))

	publisher := newAMQPPublisherWithChannel(ch, exchange, routingKey, logger)
	publisher.conn = conn

	return publisher, nil
}

func newAMQPPublisherWithChannel(ch amqpChannel, exchange, routingKey string, logger *slog.Logger) *amqpPublisher {
	if routingKey == "" {
		routingKey = "post.moderated"
	}

	return &amqpPublisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}
}

// PublishModerationEvent publishes the event as a persistent JSON message.
func (p *amqpPublisher) PublishModerationEvent(ctx context.Context, event *service.ModerationEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	err = p.channel.Publish(p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish moderation event")
	}

	p.logger.Debug("[RabbitMQ] Moderation event published",
		slog.String("post_id", event.PostID),
		slog.String("routing_key", p.routingKey),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *amqpPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
	}

	return errors.WithStack(err)
}
