package cache

import (
	"fmt"
	"sync"

	"github.com/colthorp/aocdata/internal/core"
)

// MemoryBackend is an in-memory cache backend for testing.
type MemoryBackend struct {
	entries map[int]string
	mu      sync.RWMutex
	// RemoveErr, when set, is returned by every delete.
	RemoveErr error
}

// NewMemoryBackend creates a new in-memory cache backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[int]string),
	}
}

// Path returns a dummy path for the given day.
func (b *MemoryBackend) Path(day int) string {
	return "memory://" + core.CacheFileName(day)
}

// Read returns the cached input for the given day.
func (b *MemoryBackend) Read(day int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text, ok := b.entries[day]
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrCacheMiss, b.Path(day))
	}
	if !isInvalid(text) {
		return text, nil
	}

	if b.RemoveErr != nil {
		return "", fmt.Errorf("%w: %w: %w", core.ErrCacheInvalidated, core.ErrLocalDeleteFailed, b.RemoveErr)
	}
	delete(b.entries, day)
	return "", fmt.Errorf("%w: %s", core.ErrCacheInvalidated, b.Path(day))
}

// Write persists the text.
func (b *MemoryBackend) Write(day int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[day] = text
	return nil
}

// Remove deletes the entry for the given day.
func (b *MemoryBackend) Remove(day int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.RemoveErr != nil {
		return fmt.Errorf("%w: %w", core.ErrLocalDeleteFailed, b.RemoveErr)
	}
	delete(b.entries, day)
	return nil
}

// Seed adds an entry directly (for testing).
func (b *MemoryBackend) Seed(day int, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[day] = text
}

// Has reports whether an entry exists for day (for testing).
func (b *MemoryBackend) Has(day int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.entries[day]
	return ok
}
