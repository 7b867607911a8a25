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

	"gallery/config"
	"gallery/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.PurchaseConfirmedEvent {
	return &service.PurchaseConfirmedEvent{
		RequestID:         "req-1",
		EntitlementID:     "0190e3e4-0000-7000-8000-000000000001",
		CheckoutSessionID: "cs_test_1",
		ArtworkID:         "neon-koi",
		ArtworkTitle:      "Neon Koi",
		PayerEmail:        "ada@example.com",
		AmountPaid:        399,
	}
}

func TestLocalHTTPPublisher_PublishPurchaseConfirmed(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishPurchaseConfirmed(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, eventTypePurchaseConfirmed, received.Message.Attributes[attrEventType])
	assert.Equal(t, "req-1", received.Message.Attributes[attrRequestID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.PurchaseConfirmedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishPurchaseConfirmed(context.Background(), testEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		noop    bool
	}{
		{name: "unconfigured", pubsub: nil, noop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, noop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			lc.RequireStart().RequireStop()
		})
	}
}
