package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/internal/adapters/bundle"    //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/restli"    //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
	"github.com/ConnectionMaster/restligen/internal/engine/reconcile"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			cache.NodeID,
			restli.NodeID,
			reconcile.NodeID,
			bundle.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}
	caches, err := graft.Dep[ports.ChangeCacheFactory](ctx)
	if err != nil {
		return nil, err
	}
	generator, err := graft.Dep[ports.ClientGenerator](ctx)
	if err != nil {
		return nil, err
	}
	reconciler, err := graft.Dep[*reconcile.Reconciler](ctx)
	if err != nil {
		return nil, err
	}
	packager, err := graft.Dep[ports.Packager](ctx)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, scanner, caches, generator, reconciler, packager, fsWatcher, log, tel), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Settings:  settings,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
