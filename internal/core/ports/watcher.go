package ports

import (
	"context"
	"iter"
)

// WatchEvent describes one file system change under a watched root.
type WatchEvent struct {
	// Path is the absolute path of the changed file.
	Path string
}

// Watcher observes directories for file changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given roots recursively. Roots that do not
	// exist yet are skipped.
	Start(ctx context.Context, roots []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events. The iterator ends
	// when the watcher is stopped.
	Events() iter.Seq[WatchEvent]
}
