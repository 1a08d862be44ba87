package bundle

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// NodeID is the graft node for the artifact packager.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Packager, error) {
			return NewPackager(), nil
		},
	})
}
