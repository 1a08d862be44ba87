// Package main is the entry point for the restligen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/ConnectionMaster/restligen/cmd/restligen/commands"
	"github.com/ConnectionMaster/restligen/internal/app"
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	_ "github.com/ConnectionMaster/restligen/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed; zerr prints a
		// full error report with %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	defer components.Telemetry.Close() //nolint:errcheck // Best effort flush on exit

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
