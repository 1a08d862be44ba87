package domain

import "path/filepath"

// Filename suffixes of the three file categories the build step touches.
const (
	// RestspecSuffix marks interface description files: the published
	// contract of a Rest.li resource.
	RestspecSuffix = ".restspec.json"
	// SnapshotSuffix marks snapshot files: the fully resolved resource
	// model used for compatibility checking.
	SnapshotSuffix = ".snapshot.json"
	// GeneratedSuffix marks generator output files.
	GeneratedSuffix = ".java"
)

// Settings is the resolved configuration of one generation step.
type Settings struct {
	// Name is the artifact base name.
	Name string
	// RestspecDir holds the interface description files.
	RestspecDir string
	// SnapshotDir holds the snapshot files.
	SnapshotDir string
	// OutputDir is where generated Java sources land.
	OutputDir string
	// ArtifactsDir is where the packaged bundles land.
	ArtifactsDir string
	// CacheDir holds the persisted change-detection snapshots.
	CacheDir string
	// ResolverPath is the colon-separated schema dependency search path.
	ResolverPath string
	// Version is the Rest.li protocol version tag.
	Version string
	// GeneratorCommand is the JVM launcher binary.
	GeneratorCommand string
	// GeneratorClasspath is the generator tool's classpath.
	GeneratorClasspath string
	// Options are the generation option overrides for this project.
	Options GeneratorOptions
}

// RestspecCacheLocation returns the snapshot file tracking the restspec set.
func (s *Settings) RestspecCacheLocation() string {
	return filepath.Join(s.CacheDir, "restspec.cache.json")
}

// SnapshotCacheLocation returns the snapshot file tracking the snapshot set.
func (s *Settings) SnapshotCacheLocation() string {
	return filepath.Join(s.CacheDir, "snapshot.cache.json")
}

// RestModelBundlePath returns the destination of the restspec bundle.
func (s *Settings) RestModelBundlePath() string {
	return filepath.Join(s.ArtifactsDir, s.Name+"-rest-model.jar")
}

// SnapshotBundlePath returns the destination of the snapshot bundle.
func (s *Settings) SnapshotBundlePath() string {
	return filepath.Join(s.ArtifactsDir, s.Name+"-snapshot.jar")
}
