package condeco

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:           serverURL,
		AccessToken:       "test-access-token",
		SessionToken:      "11111111-2222-3333-4444-555555555555",
		RequestsPerSecond: 1000,
	})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("requires a unique key", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
	})

	t.Run("builds the base URL from the unique key", func(t *testing.T) {
		client, err := New(Config{UniqueKey: "tenant.condecosoftware.com"})
		require.NoError(t, err)
		assert.Equal(t, "https://tenant.condecosoftware.com", client.baseURL)
	})
}

func TestClientHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "okhttp/4.10.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GlobalSettings(context.Background())
	require.NoError(t, err)
}

func TestClientRetries(t *testing.T) {
	t.Run("retries GET on server error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"}}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.GlobalSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry GET on client error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.GlobalSettings(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.True(t, apiErr.IsAuthError())
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("never retries bodied requests", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.SendMagicLink(context.Background(), "user@example.com")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("never retries mutating GETs", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.BookDesk(context.Background(), BookDeskRequest{
			LocationID: 1, GroupID: 2, FloorID: 3, DeskID: 4,
			Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			BookingType: BookingTypeAllDay,
		})
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCallErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"CallResponse":{"ResponseCode":221,"ResponseMessage":"Booking not allowed"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.BookDesk(context.Background(), BookDeskRequest{
		LocationID: 1, GroupID: 2, FloorID: 3, DeskID: 4,
		Date:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		BookingType: BookingTypeAllDay,
	})

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, 221, callErr.Code)
	assert.Equal(t, "Booking not allowed", callErr.Message)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GlobalSettings(ctx)
	require.Error(t, err)
}
