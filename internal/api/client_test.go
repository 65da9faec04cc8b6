package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colthorp/aocdata/internal/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zerolog.Nop())
	return client, srv
}

func TestFetchInputSendsSessionCookie(t *testing.T) {
	var gotPath, gotCookie, gotAgent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("123\n456"))
	})

	text, err := client.FetchInput(context.Background(), "2024", 7, "abc123")
	require.NoError(t, err)

	assert.Equal(t, "123\n456", text)
	assert.Equal(t, "/2024/day/7/input", gotPath)
	assert.Equal(t, "session=abc123", gotCookie)
	assert.Equal(t, core.DefaultUserAgent, gotAgent)
}

func TestFetchInputClassifiesResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantIs     error
		wantStatus int
	}{
		{"bad session", http.StatusBadRequest, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", core.ErrSessionRejected, 400},
		{"unauthorized", http.StatusUnauthorized, "nope", core.ErrSessionRejected, 401},
		{"forbidden", http.StatusForbidden, "nope", core.ErrSessionRejected, 403},
		{"locked", http.StatusNotFound, "Please don't repeatedly request this endpoint before it unlocks!", core.ErrPuzzleLocked, 404},
		{"server error", http.StatusInternalServerError, "oops", core.ErrRemoteFetchFailed, 500},
		{"sentinel with 200", http.StatusOK, "Puzzle inputs differ by user.", core.ErrSessionRejected, 0},
		{"empty body", http.StatusOK, "  \n", core.ErrSessionRejected, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			text, err := client.FetchInput(context.Background(), "2024", 1, "token")
			require.Error(t, err)
			assert.Empty(t, text)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.ErrorIs(t, err, core.ErrRemoteFetchFailed)
			assert.Equal(t, tt.wantStatus, StatusCode(err))
		})
	}
}

func TestFetchInputTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(ClientConfig{BaseURL: url, Timeout: time.Second}, zerolog.Nop())
	_, err := client.FetchInput(context.Background(), "2024", 1, "token")

	require.ErrorIs(t, err, core.ErrRemoteFetchFailed)
	assert.Equal(t, 0, StatusCode(err))
}

func TestFetchInputTimeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.FetchInput(context.Background(), "2024", 1, "token")
	assert.ErrorIs(t, err, core.ErrRemoteFetchFailed)
}

func TestFetchInputHonoursCancelledContext(t *testing.T) {
	var hits atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("1"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchInput(ctx, "2024", 1, "token")
	assert.ErrorIs(t, err, core.ErrRemoteFetchFailed)
	assert.Equal(t, int32(0), hits.Load())
}

func TestFetchInputSpacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("1"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, MinInterval: 100 * time.Millisecond}, zerolog.Nop())

	start := time.Now()
	for day := 1; day <= 3; day++ {
		_, err := client.FetchInput(context.Background(), "2024", day, "token")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 180*time.Millisecond)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"first line only", "  Not Found\nmore detail\n", "Not Found"},
		{"short", "oops", "oops"},
		{"ascii cut", strings.Repeat("a", 130), strings.Repeat("a", 120) + "…"},
		{"multibyte cut", strings.Repeat("é", 130), strings.Repeat("é", 120) + "…"},
		{"mixed width", "a" + strings.Repeat("🎄", 125), "a" + strings.Repeat("🎄", 119) + "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(tt.body)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(ClientConfig{}, zerolog.Nop())
	assert.Equal(t, "https://adventofcode.com/2015/day/25/input", client.InputURL("2015", 25))

	client = NewClient(ClientConfig{BaseURL: "http://localhost:8080/"}, zerolog.Nop())
	assert.Equal(t, "http://localhost:8080/2023/day/1/input", client.InputURL("2023", 1))
}

func TestMockFetcher(t *testing.T) {
	mock := NewMockFetcher()
	mock.Seed("2024", 3, "input")

	text, err := mock.FetchInput(context.Background(), "2024", 3, "tok")
	require.NoError(t, err)
	assert.Equal(t, "input", text)

	_, err = mock.FetchInput(context.Background(), "2024", 4, "tok")
	assert.ErrorIs(t, err, core.ErrPuzzleLocked)
	assert.Equal(t, 404, StatusCode(err))

	assert.Equal(t, 2, mock.RequestsMade())
	assert.Equal(t, RequestLogEntry{Year: "2024", Day: 3, Token: "tok"}, mock.RequestLog[0])
}
