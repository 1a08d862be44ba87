package ports

import "github.com/ConnectionMaster/restligen/internal/core/domain"

// Fingerprinter computes file fingerprints for change detection.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint computes the fingerprint of a single file. The file must
	// be readable.
	Fingerprint(path string) (domain.FileFingerprint, error)

	// Snapshot fingerprints every path and returns the resulting snapshot,
	// keyed by cleaned path.
	Snapshot(paths []string) (domain.FileSetSnapshot, error)
}
