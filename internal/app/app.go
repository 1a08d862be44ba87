// Package app implements the generation build step.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/ConnectionMaster/restligen/internal/adapters/watcher" //nolint:depguard // Debouncer wired in app layer
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
	"github.com/ConnectionMaster/restligen/internal/engine/reconcile"
)

// App drives one incremental client generation step: change detection,
// generator invocation, stale output reconciliation, artifact packaging, and
// finally the cache commits.
type App struct {
	settings   *domain.Settings
	scanner    ports.Scanner
	caches     ports.ChangeCacheFactory
	generator  ports.ClientGenerator
	reconciler *reconcile.Reconciler
	packager   ports.Packager
	watcher    ports.Watcher
	logger     ports.Logger
	telemetry  ports.Telemetry

	// genMu serializes generation runs; watch mode may trigger a run while
	// a previous one is still finishing.
	genMu sync.Mutex
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	scanner ports.Scanner,
	caches ports.ChangeCacheFactory,
	generator ports.ClientGenerator,
	reconciler *reconcile.Reconciler,
	packager ports.Packager,
	fsWatcher ports.Watcher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		settings:   settings,
		scanner:    scanner,
		caches:     caches,
		generator:  generator,
		reconciler: reconciler,
		packager:   packager,
		watcher:    fsWatcher,
		logger:     logger,
		telemetry:  telemetry,
	}
}

// Generate runs the build step once. Nothing is regenerated when neither the
// restspec set nor the snapshot set changed since the last committed run.
// Cache commits happen strictly after generation, reconciliation, and
// packaging all succeeded; on any failure both caches stay uncommitted and
// the next run retries in full.
func (a *App) Generate(ctx context.Context) error {
	a.genMu.Lock()
	defer a.genMu.Unlock()

	restspecs, err := a.scanner.Scan(a.settings.RestspecDir, domain.RestspecSuffix)
	if err != nil {
		return err
	}
	snapshots, err := a.scanner.Scan(a.settings.SnapshotDir, domain.SnapshotSuffix)
	if err != nil {
		return err
	}

	restspecChanged, commitRestspecs, err := a.caches.Open(a.settings.RestspecCacheLocation()).PrepareUpdate(restspecs)
	if err != nil {
		return err
	}
	snapshotChanged, commitSnapshots, err := a.caches.Open(a.settings.SnapshotCacheLocation()).PrepareUpdate(snapshots)
	if err != nil {
		return err
	}

	ctx, vertex := a.telemetry.Record(ctx, "generate rest client builders")

	if !restspecChanged && !snapshotChanged {
		a.logger.Info("client builders up to date")
		vertex.Cached()
		return nil
	}

	if err := a.generateAndReconcile(ctx, restspecs, snapshots); err != nil {
		vertex.Complete(err)
		return err
	}

	if err := a.packageBundles(ctx, restspecs, snapshots); err != nil {
		vertex.Complete(err)
		return err
	}

	// Both caches commit together after one combined run: a change in either
	// category regenerates from the full input set, so the baselines advance
	// in lockstep.
	if err := commitRestspecs(); err != nil {
		vertex.Complete(err)
		return err
	}
	if err := commitSnapshots(); err != nil {
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	return nil
}

func (a *App) generateAndReconcile(ctx context.Context, restspecs, snapshots []string) error {
	previous, err := a.scanner.Scan(a.settings.OutputDir, domain.GeneratedSuffix)
	if err != nil {
		return err
	}

	inputs := make([]string, 0, len(restspecs)+len(snapshots))
	inputs = append(inputs, restspecs...)
	inputs = append(inputs, snapshots...)

	req := domain.GenerationRequest{
		ResolverPath: a.settings.ResolverPath,
		Version:      a.settings.Version,
		OutputDir:    a.settings.OutputDir,
		InputFiles:   inputs,
		Options:      a.settings.Options,
	}

	result, err := a.generator.Generate(ctx, req)
	if err != nil {
		// Log the full invocation context, then surface the generator's
		// failure unchanged.
		logErr := zerr.With(zerr.Wrap(err, "client generation failed"), "resolver_path", req.ResolverPath)
		logErr = zerr.With(logErr, "output_dir", req.OutputDir)
		logErr = zerr.With(logErr, "inputs", strings.Join(req.InputFiles, ","))
		logErr = zerr.With(logErr, "generate_datatemplates", fmt.Sprintf("%t", req.Options.GenerateDataTemplates))
		logErr = zerr.With(logErr, "default_package", req.Options.DefaultPackage)
		a.logger.Error(logErr)
		return err
	}

	deleted, err := a.reconciler.Reconcile(previous, result.GeneratedFiles())
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("generated %d files, removed %d stale outputs", len(result.GeneratedFiles()), len(deleted)))
	return nil
}

func (a *App) packageBundles(ctx context.Context, restspecs, snapshots []string) error {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.packager.Bundle(a.settings.RestModelBundlePath(), a.settings.RestspecDir, restspecs)
	})
	g.Go(func() error {
		return a.packager.Bundle(a.settings.SnapshotBundlePath(), a.settings.SnapshotDir, snapshots)
	})
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "failed to package artifacts")
	}
	return nil
}

// Clean drops the persisted change-detection snapshots so the next run
// regenerates unconditionally. Generated sources and artifacts are left in
// place.
func (a *App) Clean() error {
	for _, location := range []string{
		a.settings.RestspecCacheLocation(),
		a.settings.SnapshotCacheLocation(),
	} {
		if err := os.Remove(location); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to remove cache snapshot"), "path", location)
		}
	}
	a.logger.Info("change detection caches cleared")
	return nil
}

// Watch runs generation once, then re-runs it whenever spec files change,
// coalescing event bursts over the given window. It returns when ctx is
// canceled. A failed generation run is logged and watching continues.
func (a *App) Watch(ctx context.Context, window time.Duration) error {
	if err := a.Generate(ctx); err != nil {
		a.logger.Error(err)
	}

	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		a.logger.Info(fmt.Sprintf("%d spec files changed, regenerating", len(paths)))
		if err := a.Generate(ctx); err != nil {
			a.logger.Error(err)
		}
	})

	roots := []string{a.settings.RestspecDir, a.settings.SnapshotDir}
	if err := a.watcher.Start(ctx, roots); err != nil {
		return err
	}
	defer a.watcher.Stop() //nolint:errcheck // Best effort stop in defer

	a.logger.Info("watching for spec changes")
	for event := range a.watcher.Events() {
		if strings.HasSuffix(event.Path, domain.RestspecSuffix) ||
			strings.HasSuffix(event.Path, domain.SnapshotSuffix) {
			debouncer.Add(event.Path)
		}
	}

	debouncer.Flush()
	return nil
}
