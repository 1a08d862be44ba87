package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
)

// NodeID is the graft node for the resolved settings.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Settings, error) {
			return Load(Path())
		},
	})
}
