package main

import (
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Success with valid config",
			setupConfig: func(t *testing.T, tmpDir string) {
				configContent := `name: widgets
restspecDir: src/idl
snapshotDir: src/snapshot
outputDir: src/generated
`
				err := os.WriteFile(tmpDir+"/restligen.yaml", []byte(configContent), 0o600)
				if err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			},
			args:         []string{"restligen", "clean"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing config",
			setupConfig:  func(_ *testing.T, _ string) {},
			args:         []string{"restligen", "clean"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Cached node outputs from a previous subtest would short-circuit
			// the wiring, so each run starts from a cold graph.
			graft.ResetDefaultCache()

			tmpDir := t.TempDir()
			tt.setupConfig(t, tmpDir)

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			t.Setenv("RESTLIGEN_NO_PROGRESS", "1")
			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
