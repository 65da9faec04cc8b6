package core

import "errors"

// Acquisition failures. Callers match them with errors.Is; producers wrap
// them with fmt.Errorf("%w: ...", ErrX) to attach detail.
var (
	// ErrNoCredentialFound means no AOC_<YYYY>_SESSION_ID variable was usable.
	ErrNoCredentialFound = errors.New("no session credential found")

	// ErrAmbiguousCredential means several years carry a session and none was chosen.
	ErrAmbiguousCredential = errors.New("ambiguous session credential")

	// ErrRemoteFetchFailed covers every failure talking to the puzzle service.
	ErrRemoteFetchFailed = errors.New("couldn't get remote data")

	// ErrSessionRejected means the service refused the session cookie.
	ErrSessionRejected = errors.New("session rejected by puzzle service")

	// ErrPuzzleLocked means the puzzle is not unlocked yet (or does not exist).
	ErrPuzzleLocked = errors.New("puzzle not available")

	// ErrLocalWriteFailed means fetched text could not be written to the cache.
	ErrLocalWriteFailed = errors.New("couldn't write local data")

	// ErrLocalReadFailed means a cached file exists but could not be read.
	ErrLocalReadFailed = errors.New("couldn't read local data")

	// ErrLocalDeleteFailed means an invalid cached file could not be removed.
	ErrLocalDeleteFailed = errors.New("couldn't delete local data")

	// ErrCacheInvalidated means the cached file held the user-variance
	// sentinel and was discarded. The loader recovers by fetching again.
	ErrCacheInvalidated = errors.New("cached input invalidated")

	// ErrCacheMiss means there is no cached file for the day.
	ErrCacheMiss = errors.New("no cached input")

	// ErrInvalidDay means a day argument could not be parsed.
	ErrInvalidDay = errors.New("invalid day")
)
