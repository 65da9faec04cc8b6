package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/colthorp/aocdata/internal/core"
)

// RequestLogEntry records a request made to the mock.
type RequestLogEntry struct {
	Year  string
	Day   int
	Token string
}

// MockFetcher is an in-memory fake suitable for deterministic unit tests.
// Inputs are keyed by year and day; unknown keys answer ErrPuzzleLocked.
type MockFetcher struct {
	mu         sync.Mutex
	inputs     map[string]string
	errs       map[string]error
	RequestLog []RequestLogEntry
}

// NewMockFetcher creates a new mock with no inputs.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		inputs:     make(map[string]string),
		errs:       make(map[string]error),
		RequestLog: make([]RequestLogEntry, 0),
	}
}

func mockKey(year string, day int) string {
	return fmt.Sprintf("%s/%d", year, day)
}

// Seed registers the input returned for year/day.
func (m *MockFetcher) Seed(year string, day int, input string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs[mockKey(year, day)] = input
}

// Fail makes requests for year/day return err.
func (m *MockFetcher) Fail(year string, day int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[mockKey(year, day)] = err
}

// RequestsMade returns the number of requests made to this mock.
func (m *MockFetcher) RequestsMade() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RequestLog)
}

// FetchInput simulates a puzzle-service request.
func (m *MockFetcher) FetchInput(ctx context.Context, year string, day int, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestLog = append(m.RequestLog, RequestLogEntry{Year: year, Day: day, Token: token})

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrRemoteFetchFailed, err)
	}
	key := mockKey(year, day)
	if err, ok := m.errs[key]; ok {
		return "", err
	}
	if input, ok := m.inputs[key]; ok {
		return input, nil
	}
	return "", fmt.Errorf("%w: %w: %w", core.ErrRemoteFetchFailed, core.ErrPuzzleLocked,
		&APIError{StatusCode: 404, Message: "Not Found"})
}
