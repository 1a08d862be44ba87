// Package reconcile removes previously generated files that a new generator
// run no longer produces.
package reconcile

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// Reconciler computes and deletes stale generator outputs.
type Reconciler struct {
	logger ports.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(logger ports.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Stale returns the sorted set difference previous \ current: the files a
// prior run produced that the current run no longer claims.
func (r *Reconciler) Stale(previous, current []string) []string {
	owned := make(map[string]struct{}, len(current))
	for _, path := range current {
		owned[filepath.Clean(path)] = struct{}{}
	}

	var stale []string
	seen := make(map[string]struct{}, len(previous))
	for _, path := range previous {
		cleaned := filepath.Clean(path)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		if _, ok := owned[cleaned]; !ok {
			stale = append(stale, cleaned)
		}
	}

	sort.Strings(stale)
	return stale
}

// Reconcile deletes every stale path and returns the paths it deleted. Only
// paths present in previous are ever touched. The first deletion failure
// aborts with the remaining files undeleted; the next run rescans the output
// directory and reconciles again.
func (r *Reconciler) Reconcile(previous, current []string) ([]string, error) {
	stale := r.Stale(previous, current)

	deleted := make([]string, 0, len(stale))
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return deleted, zerr.With(zerr.Wrap(err, "failed to delete stale output"), "path", path)
		}
		r.logger.Info("deleted stale output " + path)
		deleted = append(deleted, path)
	}
	return deleted, nil
}
