package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/footballhub/matchday/internal/platform/logging"
	"github.com/footballhub/matchday/internal/platform/resilience"
	"github.com/footballhub/matchday/internal/usecase"
)

const scoreboardPayload = `{
	"events": [{
		"id": "401234",
		"date": "2025-03-15T15:00Z",
		"season": {"year": 2024},
		"status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre", "completed": false}},
		"competitions": [{
			"venue": {"fullName": "Anfield"},
			"competitors": [
				{"homeAway": "home", "score": "0", "team": {"displayName": "Liverpool"}},
				{"homeAway": "away", "score": "0", "team": {"displayName": "Everton"}}
			]
		}]
	}]
}`

func newTestClient(t *testing.T, handler http.Handler, retries int, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:        server.URL,
		Timeout:        2 * time.Second,
		MaxRetries:     retries,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestFetchScoreboard(t *testing.T) {
	var gotPath atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path + "?" + r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardPayload))
	})

	client := newTestClient(t, handler, 0, resilience.CircuitBreakerConfig{})
	matches, err := client.FetchScoreboard(context.Background(), "eng.1", "20250315")
	if err != nil {
		t.Fatalf("fetch scoreboard: %v", err)
	}

	if gotPath.Load() != "/eng.1/scoreboard?dates=20250315" {
		t.Fatalf("unexpected request path: %v", gotPath.Load())
	}
	if len(matches) != 1 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
	if matches[0].HomeTeam != "Liverpool" || matches[0].AwayTeam != "Everton" {
		t.Fatalf("unexpected sides: %+v", matches[0])
	}
	if matches[0].CompetitionCode != "eng.1" {
		t.Fatalf("unexpected competition code: %q", matches[0].CompetitionCode)
	}
}

func TestFetchScoreboard_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(scoreboardPayload))
	})

	client := newTestClient(t, handler, 1, resilience.CircuitBreakerConfig{})
	matches, err := client.FetchScoreboard(context.Background(), "eng.1", "20250315")
	if err != nil {
		t.Fatalf("fetch scoreboard after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
	if len(matches) != 1 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}
}

func TestFetchScoreboard_NonRetryableStatusFailsFast(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	client := newTestClient(t, handler, 3, resilience.CircuitBreakerConfig{})
	if _, err := client.FetchScoreboard(context.Background(), "eng.1", "20250315"); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestFetchScoreboard_CircuitOpensAfterFailures(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := newTestClient(t, handler, 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchScoreboard(ctx, "eng.1", "20250315"); err == nil {
			t.Fatalf("expected provider failure on attempt %d", i+1)
		}
	}

	_, err := client.FetchScoreboard(ctx, "eng.1", "20250316")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable from open circuit, got %v", err)
	}
}

func TestFetchLineups(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/eng.1/summary" || r.URL.Query().Get("event") != "401234" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"boxscore": {"players": [
				{"team": {"id": "359"}, "statistics": [{"name": "Starters", "athletes": [
					{"athlete": {"displayName": "Bukayo Saka", "jersey": "7", "position": {"abbreviation": "F"}}}
				]}]},
				{"team": {"id": "363"}, "statistics": []}
			]},
			"rosters": [
				{"homeAway": "home", "team": {"id": "359"}},
				{"homeAway": "away", "team": {"id": "363"}}
			]
		}`))
	})

	client := newTestClient(t, handler, 0, resilience.CircuitBreakerConfig{})
	lineups, err := client.FetchLineups(context.Background(), "eng.1", "401234")
	if err != nil {
		t.Fatalf("fetch lineups: %v", err)
	}
	if len(lineups.Home) != 1 || lineups.Home[0].Name != "Bukayo Saka" {
		t.Fatalf("unexpected lineups: %+v", lineups)
	}
}

func TestFetchScoreboard_InputValidation(t *testing.T) {
	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	if _, err := client.FetchScoreboard(context.Background(), "", "20250315"); err == nil {
		t.Fatalf("expected error for empty competition code")
	}
	if _, err := client.FetchScoreboard(context.Background(), "eng.1", ""); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if _, err := client.FetchLineups(context.Background(), "eng.1", ""); err == nil {
		t.Fatalf("expected error for empty event id")
	}
}
