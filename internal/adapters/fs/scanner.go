package fs

import (
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner lists specification and output files by filename extension.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan returns the sorted absolute paths of all files under dir whose name
// ends in ext. A missing directory yields an empty listing.
func (s *Scanner) Scan(dir, ext string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}

	var files []string
	for path := range s.walker.WalkFiles(abs) {
		if strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}
