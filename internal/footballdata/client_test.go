package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestFetchMatches_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/matches" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("dateFrom"); got != "2024-05-01" {
			t.Errorf("dateFrom = %q, want 2024-05-01", got)
		}
		if got := r.URL.Query().Get("dateTo"); got != "2024-05-01" {
			t.Errorf("dateTo = %q, want 2024-05-01", got)
		}
		if got := r.Header.Get("X-Auth-Token"); got != "test-key" {
			t.Errorf("X-Auth-Token = %q, want test-key", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"filters":{},"resultSet":{"count":2},"matches":[
			{"id":1,"utcDate":"2024-05-01T19:00:00Z","status":"TIMED","competition":{"name":"Premier League"},"homeTeam":{"name":"C"},"awayTeam":{"name":"D"}},
			{"id":2,"utcDate":"2024-05-01T15:00:00Z","status":"SCHEDULED","homeTeam":{"name":"A"},"awayTeam":{"name":"B"}}
		]}`))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	matches, err := c.FetchMatches(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("FetchMatches() unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	// API order must be preserved
	if matches[0].UTCDate != "2024-05-01T19:00:00Z" || matches[0].HomeTeam != "C" || matches[0].AwayTeam != "D" {
		t.Errorf("unexpected first match: %+v", matches[0])
	}
	if matches[0].Competition != "Premier League" || matches[0].Status != "TIMED" || matches[0].ID != 1 {
		t.Errorf("unexpected first match metadata: %+v", matches[0])
	}
	if matches[1].HomeTeam != "A" || matches[1].AwayTeam != "B" {
		t.Errorf("unexpected second match: %+v", matches[1])
	}
}

func TestFetchMatches_MissingMatchesKey(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent", `{"resultSet":{"count":0}}`},
		{"null", `{"matches":null}`},
		{"empty", `{"matches":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New("test-key", WithBaseURL(server.URL))
			matches, err := c.FetchMatches(context.Background(), "2024-05-01")
			if err != nil {
				t.Fatalf("FetchMatches() unexpected error: %v", err)
			}
			if matches == nil {
				t.Fatal("expected empty non-nil slice")
			}
			if len(matches) != 0 {
				t.Errorf("expected no matches, got %d", len(matches))
			}
		})
	}
}

func TestFetchMatches_NonOKStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"forbidden", http.StatusForbidden, `{"message":"The resource you are looking for is restricted.","errorCode":403}`},
		{"rate limited", http.StatusTooManyRequests, `{"message":"You reached your request limit."}`},
		{"server error", http.StatusInternalServerError, "internal error"},
		{"empty body", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New("test-key", WithBaseURL(server.URL))
			matches, err := c.FetchMatches(context.Background(), "2024-05-01")
			if len(matches) != 0 {
				t.Errorf("expected no matches on error, got %d", len(matches))
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", statusErr.Body, tt.body)
			}
			if !errors.Is(err, ErrUnexpectedStatus) {
				t.Errorf("expected error to match ErrUnexpectedStatus")
			}
			if !strings.HasPrefix(err.Error(), strconv.Itoa(tt.status)+" - ") {
				t.Errorf("error %q does not start with status code", err.Error())
			}
		})
	}
}

func TestFetchMatches_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[{"utcDate":`))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL))
	matches, err := c.FetchMatches(context.Background(), "2024-05-01")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if matches != nil {
		t.Errorf("expected nil matches, got %v", matches)
	}
	if !strings.Contains(err.Error(), "decoding response") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFetchMatches_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	c := New("test-key", WithBaseURL(baseURL))
	_, err := c.FetchMatches(context.Background(), "2024-05-01")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFetchMatches_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("test-key", WithBaseURL(server.URL))
	_, err := c.FetchMatches(ctx, "2024-05-01")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrSourceUnavailable) {
		t.Error("cancellation should not be reported as source unavailable")
	}
}

func TestMatchesURL(t *testing.T) {
	c := New("k", WithBaseURL("https://example.test/v4/"))
	want := "https://example.test/v4/matches?dateFrom=2024-05-01&dateTo=2024-05-01"
	if got := c.matchesURL("2024-05-01"); got != want {
		t.Errorf("matchesURL() = %q, want %q", got, want)
	}

	if got := New("k").matchesURL("2024-05-01"); !strings.HasPrefix(got, DefaultBaseURL+"/matches?") {
		t.Errorf("default matchesURL() = %q", got)
	}
}
