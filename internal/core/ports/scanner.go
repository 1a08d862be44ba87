package ports

// Scanner lists the files of a directory tree that carry a given filename
// extension.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan returns the sorted absolute paths of all files under dir whose
	// name ends in ext. A missing directory yields an empty listing, not an
	// error.
	Scan(dir, ext string) ([]string, error)
}
