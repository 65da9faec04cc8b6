// Package api provides the HTTP client for the puzzle service.
package api

import "context"

// Fetcher is the interface for retrieving a day's puzzle input.
type Fetcher interface {
	FetchInput(ctx context.Context, year string, day int, token string) (string, error)
}
