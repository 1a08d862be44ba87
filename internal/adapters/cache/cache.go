// Package cache implements change detection backed by persisted file-set
// snapshots.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

var _ ports.ChangeCache = (*Cache)(nil)

// Cache detects changes to one monitored file set. Its identity is the
// snapshot file it persists between runs.
type Cache struct {
	path          string
	fingerprinter ports.Fingerprinter
}

// New creates a Cache persisting its snapshot at the given location.
func New(location string, fingerprinter ports.Fingerprinter) *Cache {
	return &Cache{
		path:          filepath.Clean(location),
		fingerprinter: fingerprinter,
	}
}

// PrepareUpdate loads the persisted snapshot, fingerprints the current files,
// and reports whether anything changed. The returned commit persists the
// fresh snapshot; until it is invoked the persisted state is untouched, so a
// failed run is retried in full on the next invocation. A missing snapshot
// file is treated as empty prior state and always reports a change.
func (c *Cache) PrepareUpdate(files []string) (bool, ports.CommitFunc, error) {
	prior, found, err := c.load()
	if err != nil {
		return false, nil, err
	}

	fresh, err := c.fingerprinter.Snapshot(files)
	if err != nil {
		return false, nil, err
	}

	// Without a persisted snapshot there is no baseline to compare against,
	// so the first run always counts as changed.
	changed := !found || !fresh.Equal(prior)
	commit := func() error {
		return c.persist(fresh)
	}
	return changed, commit, nil
}

func (c *Cache) load() (domain.FileSetSnapshot, bool, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.FileSetSnapshot{}, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read snapshot"), "path", c.path)
	}

	if len(data) == 0 {
		return domain.FileSetSnapshot{}, false, nil
	}

	var snapshot domain.FileSetSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to unmarshal snapshot"), "path", c.path)
	}
	return snapshot, true, nil
}

// persist atomically replaces the snapshot file. The temp file lives in the
// snapshot's directory so the rename stays on one file system.
func (c *Cache) persist(snapshot domain.FileSetSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create snapshot directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp snapshot")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write temp snapshot")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temp snapshot")
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to replace snapshot"), "path", c.path)
	}
	return nil
}
