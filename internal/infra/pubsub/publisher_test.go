package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.ModerationEvent {
	reason := "spam"

	return &service.ModerationEvent{
		RequestID:    "req-1",
		PostID:       "0d7e1f5c-6a55-4a8a-9c1e-3b3f1c2a9e10",
		Status:       "REJECTED",
		RejectReason: &reason,
		ActorID:      "a2b6b8f2-3b0c-4f0e-8e7c-8f5a3c1d2e4f",
		OccurredAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewPublisher_Configuration(t *testing.T) {
	logger := newDiscardLogger()
	ctx := context.Background()

	publisher, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	require.NoError(t, publisher.PublishModerationEvent(ctx, newTestEvent()))

	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ, Exchange: "x"}},
		{name: "rabbitmq without exchange", cfg: &config.PubSubConfig{Provider: ProviderRabbitMQ, AMQPURL: "amqp://localhost"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(ctx, tt.cfg, logger)
			assert.Error(t, err)
		})
	}

	local, err := newPublisher(ctx, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:0"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishModerationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "post.moderated", received.Message.Attributes["event_type"])
	assert.Equal(t, event.PostID, received.Message.Attributes["post_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ModerationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishModerationEvent(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "502")
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg

	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true

	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	publisher := newAMQPPublisherWithChannel(ch, "marketplace.events", "", newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishModerationEvent(context.Background(), event))

	assert.Equal(t, "marketplace.events", ch.exchange)
	assert.Equal(t, "post.moderated", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, "REJECTED", ch.msg.Headers["status"])

	var decoded service.ModerationEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, event.PostID, decoded.PostID)

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	publisher := newAMQPPublisherWithChannel(ch, "marketplace.events", "posts", newDiscardLogger())

	err := publisher.PublishModerationEvent(context.Background(), newTestEvent())

	assert.ErrorContains(t, err, "channel closed")
	assert.Equal(t, "posts", ch.key)
}

func TestAMQPPublisher_CanceledContext(t *testing.T) {
	ch := &fakeChannel{}
	publisher := newAMQPPublisherWithChannel(ch, "marketplace.events", "posts", newDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.PublishModerationEvent(ctx, newTestEvent())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ch.exchange)
}
