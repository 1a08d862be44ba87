// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ConnectionMaster/restligen/internal/adapters/bundle"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/cache"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/config"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/fs"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/logger"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/restli"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/telemetry"
	_ "github.com/ConnectionMaster/restligen/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/ConnectionMaster/restligen/internal/app"
	_ "github.com/ConnectionMaster/restligen/internal/engine/reconcile"
)
