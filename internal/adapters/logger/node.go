package logger

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// NodeID is the graft node for the logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
