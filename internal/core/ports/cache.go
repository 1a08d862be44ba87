package ports

// CommitFunc persists the snapshot computed by a PrepareUpdate call,
// overwriting the prior one. Callers invoke it zero or one times, after the
// work that depended on the input set has completed successfully.
type CommitFunc func() error

// ChangeCache detects whether a monitored file set changed since the last
// committed snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ChangeCache interface {
	// PrepareUpdate compares the current files against the persisted
	// snapshot. A missing snapshot means everything changed. The returned
	// commit has no side effects until invoked; if it is never invoked the
	// persisted state is unchanged and the next run re-detects the same
	// staleness.
	PrepareUpdate(files []string) (changed bool, commit CommitFunc, err error)
}

// ChangeCacheFactory opens a ChangeCache identified by its snapshot
// persistence location.
type ChangeCacheFactory interface {
	Open(location string) ChangeCache
}
