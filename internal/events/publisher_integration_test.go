//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startRabbitMQ launches a RabbitMQ container and returns a ready AMQP connection.
func startRabbitMQ(t *testing.T) *amqp.Connection {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3.13-alpine",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	conn, err := Dial("amqp://" + host + ":" + mappedPort.Port() + "/")
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cleanupCancel()
		_ = conn.Close()
		_ = container.Terminate(cleanupCtx)
	})

	return conn
}

func TestRabbitPublisher_OrderPlaced(t *testing.T) {
	conn := startRabbitMQ(t)

	pub, err := NewRabbitPublisher(conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, OrderPlacedRoutingKey, EventsExchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	o := testOrder()
	require.NoError(t, pub.PublishOrderPlaced(context.Background(), o, Metadata{CorrelationID: "it-1"}))

	select {
	case d := <-msgs:
		var env EventEnvelope[OrderPlacedPayload]
		require.NoError(t, json.Unmarshal(d.Body, &env))
		require.NoError(t, env.Validate(OrderPlacedEvent, 1))
		require.Equal(t, o.ID, env.Payload.OrderID)
		require.Equal(t, "it-1", env.CorrelationID)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for OrderPlaced")
	}
}
