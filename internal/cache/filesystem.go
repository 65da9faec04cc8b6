package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/colthorp/aocdata/internal/core"
)

// FilesystemBackend stores plain text files on disk.
// Directory layout: <root>/day07.txt, one file per day regardless of year.
type FilesystemBackend struct {
	root      string
	writeLock sync.Mutex
}

// NewFilesystemBackend creates a new filesystem-based cache backend.
// An empty root means core.DefaultCacheDir, relative to the working directory.
func NewFilesystemBackend(root string) *FilesystemBackend {
	if root == "" {
		root = core.DefaultCacheDir
	}
	return &FilesystemBackend{root: root}
}

// Root returns the cache directory.
func (b *FilesystemBackend) Root() string {
	return b.root
}

// Path returns the filesystem path for the given day.
func (b *FilesystemBackend) Path(day int) string {
	return filepath.Join(b.root, core.CacheFileName(day))
}

// Read returns the cached input for the given day.
func (b *FilesystemBackend) Read(day int) (string, error) {
	path := b.Path(day)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", core.ErrCacheMiss, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrLocalReadFailed, err)
	}

	text := string(data)
	if !isInvalid(text) {
		return text, nil
	}

	// Stale log-in notice, remove it
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s: %w: %w", core.ErrCacheInvalidated, path, core.ErrLocalDeleteFailed, err)
	}
	return "", fmt.Errorf("%w: %s", core.ErrCacheInvalidated, path)
}

// Write persists the text atomically.
func (b *FilesystemBackend) Write(day int, text string) error {
	path := b.Path(day)

	b.writeLock.Lock()
	defer b.writeLock.Unlock()

	// Ensure directory exists
	if err := os.MkdirAll(b.root, 0755); err != nil {
		return fmt.Errorf("%w: %w", core.ErrLocalWriteFailed, err)
	}

	// Write to temp file first, then rename (atomic)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("%w: %w", core.ErrLocalWriteFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", core.ErrLocalWriteFailed, err)
	}
	return nil
}

// Remove deletes the cached file for the given day.
func (b *FilesystemBackend) Remove(day int) error {
	b.writeLock.Lock()
	defer b.writeLock.Unlock()

	if err := os.Remove(b.Path(day)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", core.ErrLocalDeleteFailed, err)
	}
	return nil
}
