package restli_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ConnectionMaster/restligen/internal/adapters/restli"
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports/mocks"
)

// stubGenerator writes a shell script standing in for the JVM launcher. The
// script locates the --resultFile argument and writes the given manifest
// there.
func stubGenerator(t *testing.T, manifest string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub generator script requires a POSIX shell")
	}

	script := `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "--resultFile" ]; then
    out="$2"
  fi
  shift
done
if [ -n "$out" ] && [ -n '` + manifest + `' ]; then
  printf '%s' '` + manifest + `' > "$out"
fi
echo "generating builders"
exit ` + strconv.Itoa(exitCode) + `
`

	path := filepath.Join(t.TempDir(), "fake-java")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700)) //nolint:gosec // Test script must be executable
	return path
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func TestGenerator_Generate(t *testing.T) {
	command := stubGenerator(t, `{"modifiedFiles":["A.java"],"targetFiles":["A.java","B.java"]}`, 0)
	gen := restli.NewGenerator(command, "", quietLogger(t))

	result, err := gen.Generate(context.Background(), domain.GenerationRequest{
		ResolverPath: "/schemas",
		Version:      "2.0.0",
		OutputDir:    t.TempDir(),
		InputFiles:   []string{"/specs/widgets.restspec.json"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A.java"}, result.ModifiedFiles)
	assert.Equal(t, []string{"A.java", "B.java"}, result.TargetFiles)
	assert.ElementsMatch(t, []string{"A.java", "B.java"}, result.GeneratedFiles())
}

func TestGenerator_Generate_NoManifestMeansNoOutputs(t *testing.T) {
	command := stubGenerator(t, "", 0)
	gen := restli.NewGenerator(command, "", quietLogger(t))

	result, err := gen.Generate(context.Background(), domain.GenerationRequest{
		Version:   "2.0.0",
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, result.GeneratedFiles())
}

func TestGenerator_Generate_Failure(t *testing.T) {
	command := stubGenerator(t, "", 3)
	gen := restli.NewGenerator(command, "", quietLogger(t))

	_, err := gen.Generate(context.Background(), domain.GenerationRequest{
		Version:   "2.0.0",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "generator invocation failed")
}

func TestGenerator_Generate_MissingCommand(t *testing.T) {
	gen := restli.NewGenerator(filepath.Join(t.TempDir(), "no-such-binary"), "", quietLogger(t))

	_, err := gen.Generate(context.Background(), domain.GenerationRequest{Version: "2.0.0"})
	assert.Error(t, err)
}

func TestGenerator_Generate_RestoresDefaultOptions(t *testing.T) {
	saved := restli.DefaultOptions()
	t.Cleanup(func() { restli.SetDefaultOptions(saved) })

	prior := domain.GeneratorOptions{DefaultPackage: "com.example.prior"}
	restli.SetDefaultOptions(prior)

	command := stubGenerator(t, "", 0)
	gen := restli.NewGenerator(command, "", quietLogger(t))

	_, err := gen.Generate(context.Background(), domain.GenerationRequest{
		Version:   "2.0.0",
		OutputDir: t.TempDir(),
		Options: domain.GeneratorOptions{
			GenerateDataTemplates: true,
			DefaultPackage:        "com.example.override",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, prior, restli.DefaultOptions())
}

func TestGenerator_Generate_RestoresDefaultOptionsOnFailure(t *testing.T) {
	saved := restli.DefaultOptions()
	t.Cleanup(func() { restli.SetDefaultOptions(saved) })

	prior := domain.GeneratorOptions{GenerateDataTemplates: true}
	restli.SetDefaultOptions(prior)

	command := stubGenerator(t, "", 1)
	gen := restli.NewGenerator(command, "", quietLogger(t))

	_, err := gen.Generate(context.Background(), domain.GenerationRequest{
		Version: "2.0.0",
		Options: domain.GeneratorOptions{DefaultPackage: "com.example.override"},
	})
	require.Error(t, err)
	assert.Equal(t, prior, restli.DefaultOptions())
}
