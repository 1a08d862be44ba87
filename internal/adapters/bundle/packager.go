// Package bundle packages specification files into artifact archives.
package bundle

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

var _ ports.Packager = (*Packager)(nil)

// epoch is the fixed entry timestamp, so identical inputs produce
// byte-identical archives.
var epoch = time.Unix(0, 0).UTC()

// Packager writes zip archives with deterministic entry order and
// timestamps.
type Packager struct{}

// NewPackager creates a new Packager.
func NewPackager() *Packager {
	return &Packager{}
}

// Bundle writes an archive at dest containing the given files. Entry names
// are the files' paths relative to root using forward slashes, sorted.
func (p *Packager) Bundle(dest, root string, files []string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create artifacts directory")
	}

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	out, err := os.Create(dest) //nolint:gosec // Destination comes from configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create bundle"), "dest", dest)
	}
	defer out.Close() //nolint:errcheck // Best effort close in defer

	w := zip.NewWriter(out)
	for _, file := range sorted {
		if err := p.addEntry(w, root, file); err != nil {
			_ = w.Close()
			return err
		}
	}

	if err := w.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to finalize bundle"), "dest", dest)
	}
	return out.Close()
}

func (p *Packager) addEntry(w *zip.Writer, root, file string) error {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "file outside bundle root"), "path", file)
	}

	entry, err := w.CreateHeader(&zip.FileHeader{
		Name:     filepath.ToSlash(rel),
		Method:   zip.Deflate,
		Modified: epoch,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to create bundle entry")
	}

	in, err := os.Open(file) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open bundle input"), "path", file)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(entry, in); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write bundle entry"), "path", file)
	}
	return nil
}
