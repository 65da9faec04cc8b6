package cache

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/colthorp/aocdata/internal/api"
	"github.com/colthorp/aocdata/internal/core"
	"github.com/colthorp/aocdata/internal/session"
)

// Manager orchestrates caching and fetching of puzzle inputs.
//
// Load is cache-first: a valid cached file short-circuits everything else.
// Only on a miss (or after an invalid file was discarded) is the session
// resolved and the service contacted. Fetched text is written back before it
// is returned; if that write fails the load fails and the text is dropped,
// so a successful Load always leaves the input on disk.
//
// A Manager keeps no state between calls. Every Load is an independent
// attempt and nothing is retried.
type Manager struct {
	fetcher api.Fetcher
	backend Backend
	environ func() []string
	year    string
	logger  zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithYear picks the session year when several credentials are present.
func WithYear(year string) Option {
	return func(m *Manager) { m.year = year }
}

// WithEnviron replaces os.Environ as the source of session credentials.
func WithEnviron(environ func() []string) Option {
	return func(m *Manager) { m.environ = environ }
}

// NewManager creates a new manager with the given fetcher and backend.
// If backend is nil, uses the default FilesystemBackend.
func NewManager(fetcher api.Fetcher, backend Backend, logger zerolog.Logger, opts ...Option) *Manager {
	if backend == nil {
		backend = NewFilesystemBackend("")
	}
	m := &Manager{
		fetcher: fetcher,
		backend: backend,
		environ: os.Environ,
		logger:  logger.With().Str("component", "cache").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns where the given day's input is cached.
func (m *Manager) Path(day int) string {
	return m.backend.Path(day)
}

// Load returns the puzzle input for day.
//
// Steps:
//   - cached text present and valid: return it, no network access
//   - otherwise resolve the session credential from the environment
//   - fetch the input for (year, day) from the puzzle service
//   - write it to the cache, then return it
//
// Any failure aborts the attempt and is returned as is; see core for the
// error kinds.
func (m *Manager) Load(ctx context.Context, day int) (string, error) {
	log := m.logger.With().Int("day", day).Logger()

	text, err := m.backend.Read(day)
	switch {
	case err == nil:
		log.Debug().Str("path", m.backend.Path(day)).Msg("Reading from local file")
		return text, nil
	case errors.Is(err, core.ErrCacheMiss):
		log.Debug().Msg("Cache miss")
	case errors.Is(err, core.ErrCacheInvalidated):
		if errors.Is(err, core.ErrLocalDeleteFailed) {
			log.Warn().Err(err).Msg("Puzzle inputs differ by user, but the cached file could not be deleted")
		} else {
			log.Info().Msg("Puzzle inputs differ by user, deleted cached file")
		}
	default:
		return "", err
	}

	cred, err := session.Resolve(m.environ(), m.year)
	if err != nil {
		return "", err
	}

	log.Info().Str("year", cred.Year).Msg("Reading from puzzle service")
	text, err = m.fetcher.FetchInput(ctx, cred.Year, day, cred.Token)
	if err != nil {
		return "", err
	}

	if err := m.backend.Write(day, text); err != nil {
		if !errors.Is(err, core.ErrLocalWriteFailed) {
			err = fmt.Errorf("%w: %w", core.ErrLocalWriteFailed, err)
		}
		return "", err
	}
	log.Debug().Str("path", m.backend.Path(day)).Int("bytes", len(text)).Msg("Cached input")

	return text, nil
}

// Invalidate removes the cached input for day so the next Load refetches it.
func (m *Manager) Invalidate(day int) error {
	if err := m.backend.Remove(day); err != nil {
		return err
	}
	m.logger.Info().Int("day", day).Msg("Removed cached input")
	return nil
}

// Prefetch loads every day in [from, to] in order, stopping at the first
// failure. It returns the days that are now cached.
func (m *Manager) Prefetch(ctx context.Context, from, to int) ([]int, error) {
	done := make([]int, 0, max(0, to-from+1))
	for day := from; day <= to; day++ {
		if _, err := m.Load(ctx, day); err != nil {
			return done, fmt.Errorf("day %d: %w", day, err)
		}
		done = append(done, day)
	}
	return done, nil
}
