// Package cache provides the local puzzle-input cache and the loader that
// sits on top of it.
//
// # Overview
//
// Each day's input is stored as plain text under cached_data/dayNN.txt,
// keyed only by day number. Loading is cache-first: a readable cached file
// is returned as is and no credential or network access happens. On a miss
// the loader resolves the session from the environment, fetches the input
// from the puzzle service and writes it back.
//
// # Invalid Cache Files
//
// The puzzle service answers "Puzzle inputs differ by user" when the
// session does not match the user an input was generated for. A cached file
// containing that text is never valid input: reading it deletes the file and
// reports ErrCacheInvalidated, and the loader fetches again. Failure to
// delete is reported alongside (ErrLocalDeleteFailed) but does not stop the
// refetch, since the write-back overwrites the file anyway.
package cache

import (
	"strings"

	"github.com/colthorp/aocdata/internal/core"
)

// Backend is the interface for cache storage backends.
// The default implementation is FilesystemBackend which stores text files on disk.
type Backend interface {
	// Path returns the location of the given day's input (for debugging).
	Path(day int) string

	// Read returns the cached input for day.
	// Errors: core.ErrCacheMiss when absent, core.ErrCacheInvalidated when
	// the cached text was the user-variance notice and has been discarded,
	// core.ErrLocalReadFailed when the file exists but cannot be read.
	Read(day int) (string, error)

	// Write persists text for day, replacing any previous contents.
	Write(day int, text string) error

	// Remove deletes the cached input for day. Removing a missing entry is not an error.
	Remove(day int) error
}

// isInvalid reports whether cached text is the service's user-variance notice.
func isInvalid(text string) bool {
	return strings.Contains(text, core.UserVarianceSentinel)
}
