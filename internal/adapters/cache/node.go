package cache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/adapters/fs"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// NodeID is the graft node for the change cache factory.
const NodeID graft.ID = "adapter.change_cache_factory"

func init() {
	graft.Register(graft.Node[ports.ChangeCacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FingerprinterNodeID},
		Run: func(ctx context.Context) (ports.ChangeCacheFactory, error) {
			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(fingerprinter), nil
		},
	})
}
