package rabbitmq

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConsumeMessagesStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Body: []byte(`{}`)}

	mq := &RabbitMQ{}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		// nobody reads the errors channel, like a worker mid-shutdown
		mq.consumeMessages(ctx, deliveries, make(chan error), func(context.Context, []byte) error {
			return assert.AnError
		})
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("consumer didn't stop after context cancellation")
	}
}

func TestUnitConsumeMessagesFinishesOnClosedDeliveries(t *testing.T) {
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Body: []byte(`{}`)}
	close(deliveries)

	mq := &RabbitMQ{}
	consumingErrors := make(chan error, 2)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		mq.consumeMessages(context.Background(), deliveries, consumingErrors, func(_ context.Context, message []byte) error {
			assert.Equal(t, `{}`, string(message), "should pass the delivery body to the handler")
			return assert.AnError
		})
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("consumer didn't stop after deliveries channel close")
	}

	require.ErrorIs(t, <-consumingErrors, assert.AnError, "should push the handler error")
}
