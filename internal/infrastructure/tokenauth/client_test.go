package tokenauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistry-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.ValidatorConfig{
		Endpoint: srv.URL,
		Service:  "artistry",
		Stage:    "test",
		Timeout:  2 * time.Second,
	})
}

func TestClientInterpretsStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       Verdict
	}{
		{"authorized", 200, VerdictAuthorized},
		{"expired", 401, VerdictExpired},
		{"forbidden", 403, VerdictForbidden},
		{"out of contract", 418, VerdictMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				// The collaborator always answers HTTP 200; the verdict
				// lives in the body's statusCode.
				json.NewEncoder(w).Encode(map[string]int{"statusCode": tt.statusCode})
			})

			verdict, err := client.Validate(context.Background(), "tok", "artist-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, verdict)
		})
	}
}

func TestClientSendsTokenAndArtistID(t *testing.T) {
	var got validateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/artistry-test-ValidateToken", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]int{"statusCode": 200})
	})

	_, err := client.Validate(context.Background(), "the-token", "artist-42")
	require.NoError(t, err)
	assert.Equal(t, "the-token", got.Token)
	assert.Equal(t, "artist-42", got.ArtistID)
}

func TestClientMissingStatusCodeIsMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	verdict, err := client.Validate(context.Background(), "tok", "artist-1")
	require.NoError(t, err)
	assert.Equal(t, VerdictMalformed, verdict)
}

func TestClientGarbageBodyIsMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	verdict, err := client.Validate(context.Background(), "tok", "artist-1")
	require.NoError(t, err)
	assert.Equal(t, VerdictMalformed, verdict)
}

func TestClientTransportFailureReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(config.ValidatorConfig{
		Endpoint: srv.URL,
		Service:  "artistry",
		Stage:    "test",
		Timeout:  time.Second,
	})

	_, err := client.Validate(context.Background(), "tok", "artist-1")
	require.Error(t, err)
}
