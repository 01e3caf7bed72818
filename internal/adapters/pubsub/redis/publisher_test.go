package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-zoo/internal/domain/zoo"
)

func TestNewPublisherValidates(t *testing.T) {
	_, err := NewPublisher(nil, "zoo")
	assert.Error(t, err)
}

func TestMessageEncoding(t *testing.T) {
	n := zoo.Notification{
		Type:       zoo.NotificationAdded,
		Category:   zoo.CategoryDog,
		Count:      3,
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	b, err := json.Marshal(toMessage(n))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ADDED","category":"dog","count":3,"occurred_at":"2024-01-02T03:04:05Z"}`, string(b))

	m, err := DecodeMessage(string(b))
	require.NoError(t, err)
	assert.Equal(t, toMessage(n), m)
}
