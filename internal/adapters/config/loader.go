// Package config provides the configuration loader for restligen.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
)

// DefaultPath is the configuration file read from the working directory when
// RESTLIGEN_CONFIG is unset.
const DefaultPath = "restligen.yaml"

// Path returns the configuration file path, honoring the RESTLIGEN_CONFIG
// override.
func Path() string {
	if p := os.Getenv("RESTLIGEN_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the configuration file at path, applies environment variable
// overrides, fills defaults, and validates required settings.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := env.Parse(&f); err != nil {
		return nil, zerr.Wrap(err, "failed to apply environment overrides")
	}

	applyDefaults(&f)
	if err := validate(&f); err != nil {
		return nil, err
	}

	return &domain.Settings{
		Name:               f.Name,
		RestspecDir:        f.RestspecDir,
		SnapshotDir:        f.SnapshotDir,
		OutputDir:          f.OutputDir,
		ArtifactsDir:       f.ArtifactsDir,
		CacheDir:           f.CacheDir,
		ResolverPath:       f.ResolverPath,
		Version:            f.Version,
		GeneratorCommand:   f.Generator.Command,
		GeneratorClasspath: f.Generator.Classpath,
		Options: domain.GeneratorOptions{
			GenerateDataTemplates: f.Generator.GenerateDataTemplates,
			DefaultPackage:        f.Generator.DefaultPackage,
		},
	}, nil
}

func applyDefaults(f *file) {
	if f.ArtifactsDir == "" {
		f.ArtifactsDir = defaultArtifactsDir
	}
	if f.CacheDir == "" {
		f.CacheDir = defaultCacheDir
	}
	if f.Version == "" {
		f.Version = defaultVersion
	}
	if f.Generator.Command == "" {
		f.Generator.Command = defaultCommand
	}
}

func validate(f *file) error {
	required := map[string]string{
		"name":        f.Name,
		"restspecDir": f.RestspecDir,
		"snapshotDir": f.SnapshotDir,
		"outputDir":   f.OutputDir,
	}
	for setting, value := range required {
		if value == "" {
			// Wrap first so the sentinel stays in the unwrap chain, then
			// attach the setting name.
			return zerr.With(zerr.Wrap(domain.ErrMissingSetting, "missing required setting"), "setting", setting)
		}
	}
	return nil
}
