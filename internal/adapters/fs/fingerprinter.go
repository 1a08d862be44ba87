package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes change-detection fingerprints using XXHash.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint computes the fingerprint of a single file from its size,
// modification time, and content hash.
func (f *Fingerprinter) Fingerprint(path string) (domain.FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileFingerprint{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	hash, err := f.hashContent(path)
	if err != nil {
		return domain.FileFingerprint{}, err
	}

	return domain.FileFingerprint{
		Size:      info.Size(),
		MTimeNano: info.ModTime().UnixNano(),
		Hash:      hash,
	}, nil
}

// Snapshot fingerprints every path and returns the resulting snapshot keyed
// by cleaned path.
func (f *Fingerprinter) Snapshot(paths []string) (domain.FileSetSnapshot, error) {
	snapshot := make(domain.FileSetSnapshot, len(paths))
	for _, path := range paths {
		fp, err := f.Fingerprint(path)
		if err != nil {
			return nil, err
		}
		snapshot[filepath.Clean(path)] = fp
	}
	return snapshot, nil
}

func (f *Fingerprinter) hashContent(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
