package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wrestler_elo/internal/config"
	"wrestler_elo/internal/retry"
)

// fastRetry keeps retry tests quick
var fastRetry = config.RetryConfig{
	MaxAttempts: 3,
	InitialWait: time.Millisecond,
	MaxWait:     2 * time.Millisecond,
	Multiplier:  2,
	Timeout:     time.Second,
}

const statsPayload = `{
  "data": {
    "currentWrestlerStats": {
      "currentWrestlerStat": [
        {
          "name": "John Cena",
          "brand": "RAW",
          "currentElo": {"elo": 1500.0, "date": "2024-01-01T00:00:00Z"},
          "maxElo": {"elo": 1700.2, "date": "2023-06-15T00:00:00Z"},
          "minElo": {"elo": 1200.5, "date": "2020-03-01T00:00:00Z"}
        },
        {
          "name": "Bayley",
          "brand": "SmackDown",
          "currentElo": {"elo": 1620.4, "date": "2024-01-02T00:00:00Z"},
          "maxElo": {"elo": 1650, "date": "2023-12-01T00:00:00Z"},
          "minElo": null
        }
      ]
    }
  }
}`

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:4000/graphql")

	if client.url != "http://localhost:4000/graphql" {
		t.Errorf("Expected URL to be stored, got '%s'", client.url)
	}

	if client.client.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", client.client.Timeout)
	}

	if client.apiCallCount != 0 {
		t.Errorf("Expected API call count 0, got %d", client.apiCallCount)
	}
}

func TestAPICallCounter(t *testing.T) {
	client := NewClient("http://localhost:4000/graphql")

	// Test initial count
	if count := client.GetAPICallCount(); count != 0 {
		t.Errorf("Expected initial count 0, got %d", count)
	}

	// Test increment
	client.IncrementAPICall()
	client.IncrementAPICall()
	if count := client.GetAPICallCount(); count != 2 {
		t.Errorf("Expected count 2 after increments, got %d", count)
	}
}

func TestGetCurrentWrestlerStats(t *testing.T) {
	var gotQuery request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotQuery); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statsPayload))
	}))
	defer server.Close()

	client := NewClientWithRetry(server.URL, fastRetry)

	resp, err := client.GetCurrentWrestlerStats(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(gotQuery.Query, "currentWrestlerStats") {
		t.Errorf("Expected stats query to be sent, got %q", gotQuery.Query)
	}

	stats := resp.Stats()
	if len(stats) != 2 {
		t.Fatalf("Expected 2 stats, got %d", len(stats))
	}

	cena := stats[0]
	if cena.Name != "John Cena" || cena.Brand != "RAW" {
		t.Errorf("Unexpected first stat: %+v", cena)
	}
	if cena.CurrentElo == nil || cena.CurrentElo.Elo != 1500.0 {
		t.Errorf("Expected current elo 1500, got %+v", cena.CurrentElo)
	}
	if !cena.MaxElo.Date.Equal(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected max elo date %v", cena.MaxElo.Date)
	}

	if stats[1].MinElo != nil {
		t.Error("Expected null minElo to decode as nil")
	}

	if count := client.GetAPICallCount(); count != 1 {
		t.Errorf("Expected 1 API call, got %d", count)
	}
}

func TestGetCurrentWrestlerStats_GraphQLErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "field not found"}, {"message": "bad query"}]}`))
	}))
	defer server.Close()

	client := NewClientWithRetry(server.URL, fastRetry)

	_, err := client.GetCurrentWrestlerStats(context.Background())
	if err == nil {
		t.Fatal("Expected error for GraphQL errors")
	}

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("Expected ResponseError, got %T: %v", err, err)
	}
	if len(respErr.Errors) != 2 {
		t.Errorf("Expected 2 GraphQL errors, got %d", len(respErr.Errors))
	}
	if !strings.Contains(err.Error(), "field not found; bad query") {
		t.Errorf("Expected joined messages, got %q", err.Error())
	}

	// GraphQL errors are not retried
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected 1 request, got %d", got)
	}
}

func TestGetCurrentWrestlerStats_StatusCodes(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedCalls int32
	}{
		{"BadRequestNotRetried", http.StatusBadRequest, 1},
		{"NotFoundNotRetried", http.StatusNotFound, 1},
		{"ServerErrorRetried", http.StatusInternalServerError, 3},
		{"TooManyRequestsRetried", http.StatusTooManyRequests, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			client := NewClientWithRetry(server.URL, fastRetry)

			_, err := client.GetCurrentWrestlerStats(context.Background())
			if err == nil {
				t.Fatal("Expected error for non-200 status")
			}
			if got := atomic.LoadInt32(&calls); got != tt.expectedCalls {
				t.Errorf("Expected %d requests, got %d", tt.expectedCalls, got)
			}
			if tt.expectedCalls == 1 && !retry.IsPermanent(err) {
				t.Errorf("Expected permanent error, got %v", err)
			}
		})
	}
}

func TestGetCurrentWrestlerStats_RecoversAfterServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(statsPayload))
	}))
	defer server.Close()

	client := NewClientWithRetry(server.URL, fastRetry)

	resp, err := client.GetCurrentWrestlerStats(context.Background())
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if len(resp.Stats()) != 2 {
		t.Errorf("Expected 2 stats, got %d", len(resp.Stats()))
	}
	if count := client.GetAPICallCount(); count != 2 {
		t.Errorf("Expected 2 API calls, got %d", count)
	}
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLen int
		wantErr bool
	}{
		{"Valid", statsPayload, 2, false},
		{"EmptyList", `{"data": {"currentWrestlerStats": {"currentWrestlerStat": []}}}`, 0, false},
		{"MissingWrapper", `{"data": {"currentWrestlerStats": null}}`, 0, false},
		{"NoData", `{}`, 0, true},
		{"Malformed", `{"data": `, 0, true},
		{"BadSnapshot", `{"data": {"currentWrestlerStats": {"currentWrestlerStat": [{"name": "X", "currentElo": {"elo": "n/a", "date": "2024-01-01"}}]}}}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := decodeResponse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				if !retry.IsPermanent(err) {
					t.Errorf("Expected decode errors to be permanent, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(resp.Stats()) != tt.wantLen {
				t.Errorf("Expected %d stats, got %d", tt.wantLen, len(resp.Stats()))
			}
		})
	}
}
