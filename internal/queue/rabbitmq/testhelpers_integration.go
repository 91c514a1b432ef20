//go:build integration

package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const amqpPort = nat.Port("5672/tcp")

// setupRabbitMQContainer starts a broker and returns its AMQP URL once the
// broker reports startup complete.
func setupRabbitMQContainer(t require.TestingT, ctx context.Context) (string, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3.13-alpine",
		ExposedPorts: []string{string(amqpPort)},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(amqpPort),
			wait.ForLog("Server startup complete"),
		).WithDeadline(2 * time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, amqpPort)
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port()), cleanup
}
