package ports

// Packager bundles a set of files into one artifact archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Bundle writes an archive at dest containing the given files. Entry
	// names are the files' paths relative to root, using forward slashes.
	Bundle(dest, root string, files []string) error
}
