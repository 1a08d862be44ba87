package config

// file represents the structure of the restligen.yaml configuration file.
// Environment variables override file values after parsing.
type file struct {
	Name         string        `yaml:"name" env:"RESTLIGEN_NAME"`
	RestspecDir  string        `yaml:"restspecDir" env:"RESTLIGEN_RESTSPEC_DIR"`
	SnapshotDir  string        `yaml:"snapshotDir" env:"RESTLIGEN_SNAPSHOT_DIR"`
	OutputDir    string        `yaml:"outputDir" env:"RESTLIGEN_OUTPUT_DIR"`
	ArtifactsDir string        `yaml:"artifactsDir" env:"RESTLIGEN_ARTIFACTS_DIR"`
	CacheDir     string        `yaml:"cacheDir" env:"RESTLIGEN_CACHE_DIR"`
	ResolverPath string        `yaml:"resolverPath" env:"RESTLIGEN_RESOLVER_PATH"`
	Version      string        `yaml:"version" env:"RESTLIGEN_VERSION"`
	Generator    generatorFile `yaml:"generator"`
}

type generatorFile struct {
	Command               string `yaml:"command" env:"RESTLIGEN_GENERATOR_COMMAND"`
	Classpath             string `yaml:"classpath" env:"RESTLIGEN_GENERATOR_CLASSPATH"`
	GenerateDataTemplates bool   `yaml:"generateDataTemplates" env:"RESTLIGEN_GENERATE_DATATEMPLATES"`
	DefaultPackage        string `yaml:"defaultPackage" env:"RESTLIGEN_DEFAULT_PACKAGE"`
}

const (
	defaultArtifactsDir = "build/artifacts"
	defaultCacheDir     = ".restligen"
	defaultVersion      = "2.0.0"
	defaultCommand      = "java"
)
