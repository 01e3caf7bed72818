//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	redispub "animal-zoo/internal/adapters/pubsub/redis"
	"animal-zoo/internal/domain/zoo"
	platformredis "animal-zoo/internal/platform/redis"
)

func TestPublisherDeliversToSubscribers(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := platformredis.Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sub := client.Subscribe(ctx, "zoo.test")
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	pub, err := redispub.NewPublisher(client, "zoo.test")
	require.NoError(t, err)

	occurred := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, pub.Publish(ctx, zoo.Notification{
		Type:       zoo.NotificationBorrowed,
		Category:   zoo.CategoryFish,
		Holder:     "x",
		OccurredAt: occurred,
	}))

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(recvCtx)
	require.NoError(t, err)

	got, err := redispub.DecodeMessage(msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, zoo.NotificationBorrowed, got.Type)
	assert.Equal(t, zoo.CategoryFish, got.Category)
	assert.Equal(t, "x", got.Holder)
	assert.True(t, occurred.Equal(got.OccurredAt))
}
