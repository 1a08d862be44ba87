package cache

import "github.com/ConnectionMaster/restligen/internal/core/ports"

var _ ports.ChangeCacheFactory = (*Factory)(nil)

// Factory opens change caches bound to one fingerprinter.
type Factory struct {
	fingerprinter ports.Fingerprinter
}

// NewFactory creates a new Factory.
func NewFactory(fingerprinter ports.Fingerprinter) *Factory {
	return &Factory{fingerprinter: fingerprinter}
}

// Open returns the change cache persisting its snapshot at location.
func (f *Factory) Open(location string) ports.ChangeCache {
	return New(location, f.fingerprinter)
}
