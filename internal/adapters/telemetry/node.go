package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/adapters/telemetry/progrock"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// NodeID is the graft node for telemetry.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Progress recording can be disabled for plain log output,
			// e.g. on CI.
			if os.Getenv("RESTLIGEN_NO_PROGRESS") != "" {
				return NewNoOp(), nil
			}
			return progrock.New(), nil
		},
	})
}
