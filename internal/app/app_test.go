package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/ConnectionMaster/restligen/internal/app"
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
	"github.com/ConnectionMaster/restligen/internal/core/ports/mocks"
	"github.com/ConnectionMaster/restligen/internal/engine/reconcile"
)

type fixture struct {
	settings      *domain.Settings
	scanner       *mocks.MockScanner
	caches        *mocks.MockChangeCacheFactory
	restspecCache *mocks.MockChangeCache
	snapshotCache *mocks.MockChangeCache
	generator     *mocks.MockClientGenerator
	packager      *mocks.MockPackager
	watcher       *mocks.MockWatcher
	logger        *mocks.MockLogger
	telemetry     *mocks.MockTelemetry
	vertex        *mocks.MockVertex
	app           *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		settings: &domain.Settings{
			Name:         "widgets",
			RestspecDir:  filepath.Join(t.TempDir(), "idl"),
			SnapshotDir:  filepath.Join(t.TempDir(), "snapshot"),
			OutputDir:    t.TempDir(),
			ArtifactsDir: t.TempDir(),
			CacheDir:     t.TempDir(),
			Version:      "2.0.0",
		},
		scanner:       mocks.NewMockScanner(ctrl),
		caches:        mocks.NewMockChangeCacheFactory(ctrl),
		restspecCache: mocks.NewMockChangeCache(ctrl),
		snapshotCache: mocks.NewMockChangeCache(ctrl),
		generator:     mocks.NewMockClientGenerator(ctrl),
		packager:      mocks.NewMockPackager(ctrl),
		watcher:       mocks.NewMockWatcher(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
		telemetry:     mocks.NewMockTelemetry(ctrl),
		vertex:        mocks.NewMockVertex(ctrl),
	}

	f.app = app.New(
		f.settings,
		f.scanner,
		f.caches,
		f.generator,
		reconcile.NewReconciler(f.logger),
		f.packager,
		f.watcher,
		f.logger,
		f.telemetry,
	)
	return f
}

func (f *fixture) expectScans(restspecs, snapshots []string) {
	f.scanner.EXPECT().Scan(f.settings.RestspecDir, domain.RestspecSuffix).Return(restspecs, nil)
	f.scanner.EXPECT().Scan(f.settings.SnapshotDir, domain.SnapshotSuffix).Return(snapshots, nil)
}

func (f *fixture) expectCaches(restspecChanged, snapshotChanged bool, commitRestspecs, commitSnapshots ports.CommitFunc) {
	f.caches.EXPECT().Open(f.settings.RestspecCacheLocation()).Return(f.restspecCache)
	f.caches.EXPECT().Open(f.settings.SnapshotCacheLocation()).Return(f.snapshotCache)
	f.restspecCache.EXPECT().PrepareUpdate(gomock.Any()).Return(restspecChanged, commitRestspecs, nil)
	f.snapshotCache.EXPECT().PrepareUpdate(gomock.Any()).Return(snapshotChanged, commitSnapshots, nil)
}

func (f *fixture) expectVertex() {
	f.telemetry.EXPECT().Record(gomock.Any(), "generate rest client builders").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, f.vertex
		})
}

func TestGenerate_SkipsWhenUnchanged(t *testing.T) {
	f := newFixture(t)

	f.expectScans([]string{"a.restspec.json"}, []string{"a.snapshot.json"})
	f.expectCaches(false, false, nil, nil)
	f.expectVertex()
	f.vertex.EXPECT().Cached()
	f.logger.EXPECT().Info("client builders up to date")

	require.NoError(t, f.app.Generate(context.Background()))
}

func TestGenerate_RunsAndCommitsInOrder(t *testing.T) {
	f := newFixture(t)

	var mu sync.Mutex
	var trace []string
	record := func(step string) {
		mu.Lock()
		trace = append(trace, step)
		mu.Unlock()
	}

	restspecs := []string{"/specs/a.restspec.json"}
	snapshots := []string{"/snaps/a.snapshot.json"}

	f.expectScans(restspecs, snapshots)
	f.expectCaches(true, false,
		func() error { record("commit-restspecs"); return nil },
		func() error { record("commit-snapshots"); return nil },
	)
	f.expectVertex()
	f.scanner.EXPECT().Scan(f.settings.OutputDir, domain.GeneratedSuffix).Return(nil, nil)

	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
			record("generate")
			assert.Equal(t, append(append([]string{}, restspecs...), snapshots...), req.InputFiles)
			assert.Equal(t, f.settings.OutputDir, req.OutputDir)
			assert.Equal(t, "2.0.0", req.Version)
			return domain.GenerationResult{TargetFiles: []string{"/out/A.java"}}, nil
		})

	f.packager.EXPECT().Bundle(f.settings.RestModelBundlePath(), f.settings.RestspecDir, restspecs).
		DoAndReturn(func(string, string, []string) error { record("bundle"); return nil })
	f.packager.EXPECT().Bundle(f.settings.SnapshotBundlePath(), f.settings.SnapshotDir, snapshots).
		DoAndReturn(func(string, string, []string) error { record("bundle"); return nil })

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Complete(nil)

	require.NoError(t, f.app.Generate(context.Background()))

	require.Len(t, trace, 5)
	assert.Equal(t, "generate", trace[0])
	assert.Equal(t, "bundle", trace[1])
	assert.Equal(t, "bundle", trace[2])
	assert.Equal(t, "commit-restspecs", trace[3])
	assert.Equal(t, "commit-snapshots", trace[4])
}

func TestGenerate_RemovesStaleOutputs(t *testing.T) {
	f := newFixture(t)

	stale := filepath.Join(f.settings.OutputDir, "Old.java")
	kept := filepath.Join(f.settings.OutputDir, "Kept.java")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))
	require.NoError(t, os.WriteFile(kept, []byte("kept"), 0o600))

	f.expectScans([]string{"/specs/a.restspec.json"}, nil)
	f.expectCaches(true, true, func() error { return nil }, func() error { return nil })
	f.expectVertex()
	f.scanner.EXPECT().Scan(f.settings.OutputDir, domain.GeneratedSuffix).Return([]string{stale, kept}, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(domain.GenerationResult{TargetFiles: []string{kept}}, nil)
	f.packager.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Complete(nil)

	require.NoError(t, f.app.Generate(context.Background()))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, kept)
}

func TestGenerate_GeneratorFailureSkipsCommits(t *testing.T) {
	f := newFixture(t)

	genErr := errors.Join(domain.ErrGenerationFailed, zerr.New("exit code 1"))
	committed := false

	f.expectScans([]string{"/specs/a.restspec.json"}, nil)
	f.expectCaches(true, false,
		func() error { committed = true; return nil },
		func() error { committed = true; return nil },
	)
	f.expectVertex()
	f.scanner.EXPECT().Scan(f.settings.OutputDir, domain.GeneratedSuffix).Return(nil, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.GenerationResult{}, genErr)

	var logged error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })
	f.vertex.EXPECT().Complete(genErr)

	err := f.app.Generate(context.Background())
	require.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.False(t, committed, "caches must stay uncommitted after a failed run")

	// The logged error carries the invocation context but still chains back
	// to the generator's failure.
	require.NotNil(t, logged)
	assert.ErrorIs(t, logged, domain.ErrGenerationFailed)
	assert.Contains(t, logged.Error(), "client generation failed")
}

func TestGenerate_PackagingFailureSkipsCommits(t *testing.T) {
	f := newFixture(t)

	bundleErr := zerr.New("disk full")
	committed := false

	f.expectScans([]string{"/specs/a.restspec.json"}, nil)
	f.expectCaches(true, false,
		func() error { committed = true; return nil },
		func() error { committed = true; return nil },
	)
	f.expectVertex()
	f.scanner.EXPECT().Scan(f.settings.OutputDir, domain.GeneratedSuffix).Return(nil, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.GenerationResult{}, nil)
	f.packager.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).Return(bundleErr)
	f.packager.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Complete(gomock.Any())

	err := f.app.Generate(context.Background())
	require.ErrorIs(t, err, bundleErr)
	assert.False(t, committed)
}

func TestGenerate_CommitFailurePropagates(t *testing.T) {
	f := newFixture(t)

	commitErr := zerr.New("rename failed")
	snapshotCommitted := false

	f.expectScans([]string{"/specs/a.restspec.json"}, nil)
	f.expectCaches(true, false,
		func() error { return commitErr },
		func() error { snapshotCommitted = true; return nil },
	)
	f.expectVertex()
	f.scanner.EXPECT().Scan(f.settings.OutputDir, domain.GeneratedSuffix).Return(nil, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.GenerationResult{}, nil)
	f.packager.EXPECT().Bundle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Complete(commitErr)

	err := f.app.Generate(context.Background())
	require.ErrorIs(t, err, commitErr)
	assert.False(t, snapshotCommitted, "snapshot commit must not run after a failed restspec commit")
}

func TestWatch_RegeneratesOnSpecEvents(t *testing.T) {
	f := newFixture(t)

	// Two unchanged generation cycles: the initial run and the one the
	// events trigger.
	for range 2 {
		f.expectScans(nil, nil)
		f.expectCaches(false, false, nil, nil)
		f.expectVertex()
		f.vertex.EXPECT().Cached()
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	var events iter.Seq[ports.WatchEvent] = func(yield func(ports.WatchEvent) bool) {
		for _, e := range []ports.WatchEvent{
			{Path: "/specs/a.restspec.json"},
			{Path: "/specs/notes.txt"},
			{Path: "/snaps/b.snapshot.json"},
		} {
			if !yield(e) {
				return
			}
		}
	}

	f.watcher.EXPECT().Start(gomock.Any(), []string{f.settings.RestspecDir, f.settings.SnapshotDir}).Return(nil)
	f.watcher.EXPECT().Events().Return(events)
	f.watcher.EXPECT().Stop().Return(nil)

	// A huge window keeps the debounce timer from firing; the final flush
	// delivers the coalesced events and drives the second run.
	require.NoError(t, f.app.Watch(context.Background(), time.Hour))
}

func TestClean(t *testing.T) {
	f := newFixture(t)

	restspecCache := f.settings.RestspecCacheLocation()
	snapshotCache := f.settings.SnapshotCacheLocation()
	require.NoError(t, os.WriteFile(restspecCache, []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(snapshotCache, []byte("{}"), 0o600))

	f.logger.EXPECT().Info("change detection caches cleared")

	require.NoError(t, f.app.Clean())
	assert.NoFileExists(t, restspecCache)
	assert.NoFileExists(t, snapshotCache)
}

func TestClean_MissingCachesIsNotAnError(t *testing.T) {
	f := newFixture(t)

	f.logger.EXPECT().Info("change detection caches cleared")

	require.NoError(t, f.app.Clean())
}
