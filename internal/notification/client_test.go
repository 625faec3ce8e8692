package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() RegistrationEvent {
	return RegistrationEvent{
		AssetID:             "AST-2024-001",
		LaptopID:            "LAP-001",
		SerialNumber:        "SN-123456",
		Model:               "ThinkPad T14",
		DeviceBrand:         "Lenovo",
		WarrentyExpieryDate: "2025-01-15",
	}
}

func testConfig(url string) Config {
	return Config{
		URL:            url,
		Timeout:        2 * time.Second,
		RetryAttempts:  2,
		RetryDelay:     10 * time.Millisecond,
		MaxPayloadSize: 1024,
	}
}

func TestNotifyRegistration_Success(t *testing.T) {
	var received RegistrationEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))
	err := client.NotifyRegistration(testEvent())

	assert.NoError(t, err)
	assert.Equal(t, "AST-2024-001", received.AssetID)
	assert.Equal(t, "LAP-001", received.LaptopID)
	assert.Equal(t, "laptop-inventory-api", received.Source)
	assert.False(t, received.Timestamp.IsZero())
}

func TestNotifyRegistration_RetriesOnServerError(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))
	err := client.NotifyRegistration(testEvent())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestNotifyRegistration_RecoversAfterTransientFailure(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))
	err := client.NotifyRegistration(testEvent())

	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestNotifyRegistration_InvalidEvent(t *testing.T) {
	var called int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&called, 1)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))

	event := testEvent()
	event.AssetID = ""
	err := client.NotifyRegistration(event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid registration event")
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestNotifyRegistration_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.NotifyRegistrationWithContext(ctx, testEvent())
	assert.Error(t, err)
}

func TestIsHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))
	assert.True(t, client.IsHealthy(context.Background()))
}

func TestIsHealthy_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewNotifierWithConfig(testConfig(server.URL))
	assert.False(t, client.IsHealthy(context.Background()))
}
