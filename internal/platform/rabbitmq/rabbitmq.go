// Package rabbitmq is thin plumbing over an amqp connection for consuming
// and publishing feedsync command messages.
package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc is a function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel  *amqp.Channel
	exchange string
	done     chan struct{}
}

// NewRabbitMQ returns a new RabbitMQ on a fresh channel of connection.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish publishes message to routingKey on the configured exchange.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Body:        message,
	}

	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
}

// Consume consumes messages from queue and passes deliveries to handler.
// It returns a channel with errors from the handler and the consuming
// process. Consuming runs in the background until the context is closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.done = make(chan struct{})
	go func() {
		defer close(mq.done)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		if err := handler(ctx, delivery.Body); err != nil {
			if pushError(ctx, err, consumingErrors) != nil {
				return
			}
			if err := delivery.Nack(false, false); err != nil {
				if pushError(ctx, fmt.Errorf("can't nack message: %w", err), consumingErrors) != nil {
					return
				}
			}
			continue
		}

		if err := delivery.Ack(false); err != nil {
			if pushError(ctx, fmt.Errorf("can't ack message: %w", err), consumingErrors) != nil {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// Done returns a channel which is closed when consuming has finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.done
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
