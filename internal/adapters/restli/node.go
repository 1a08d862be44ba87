package restli

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/adapters/config"
	"github.com/ConnectionMaster/restligen/internal/adapters/logger"
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// NodeID is the graft node for the external client generator.
const NodeID graft.ID = "adapter.client_generator"

func init() {
	graft.Register(graft.Node[ports.ClientGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ClientGenerator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(settings.GeneratorCommand, settings.GeneratorClasspath, log), nil
		},
	})
}
