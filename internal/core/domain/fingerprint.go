// Package domain contains the core types for incremental client generation.
package domain

// FileFingerprint is a comparable signature of one input file, derived from
// its size, modification time, and content hash. Two fingerprints are equal
// iff the underlying file is unchanged for generation purposes.
type FileFingerprint struct {
	Size      int64  `json:"size"`
	MTimeNano int64  `json:"mtime_nano"`
	Hash      string `json:"hash"`
}

// FileSetSnapshot maps a cleaned file path to its fingerprint, capturing the
// complete state of a monitored file set at one point in time.
type FileSetSnapshot map[string]FileFingerprint

// Equal reports whether both snapshots cover the same paths with the same
// fingerprints.
func (s FileSetSnapshot) Equal(other FileSetSnapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for path, fp := range s {
		prev, ok := other[path]
		if !ok || prev != fp {
			return false
		}
	}
	return true
}

// Paths returns the paths covered by the snapshot in unspecified order.
func (s FileSetSnapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	return paths
}
