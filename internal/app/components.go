package app

import (
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App       *App
	Settings  *domain.Settings
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
