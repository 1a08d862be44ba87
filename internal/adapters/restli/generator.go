// Package restli invokes the external Rest.li request builder generator as a
// subprocess.
package restli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// mainClass is the entry point of the external generator tool.
const mainClass = "com.linkedin.restli.tools.clientgen.RestRequestBuilderGenerator"

var _ ports.ClientGenerator = (*Generator)(nil)

// Generator runs RestRequestBuilderGenerator via a JVM subprocess.
type Generator struct {
	command   string
	classpath string
	logger    ports.Logger
}

// NewGenerator creates a new Generator. command is the JVM launcher binary,
// classpath the generator tool's classpath.
func NewGenerator(command, classpath string, logger ports.Logger) *Generator {
	return &Generator{
		command:   command,
		classpath: classpath,
		logger:    logger,
	}
}

// Generate invokes the generator for the given request. The request's options
// override the process-wide defaults for the duration of the call; the prior
// values are restored before Generate returns, whether or not the call
// succeeded. The generator's failure is returned unchanged apart from exit
// code metadata.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	restore := overrideDefaults(req.Options)
	defer restore()

	resultFile := filepath.Join(os.TempDir(), "restligen-"+uuid.NewString()+".json")
	defer os.Remove(resultFile) //nolint:errcheck // Best effort cleanup

	args := g.buildArgs(req, DefaultOptions(), resultFile)

	cmd := exec.CommandContext(ctx, g.command, args...) //nolint:gosec // Command comes from configuration
	cmd.Stdout = &logWriter{logger: g.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: g.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return domain.GenerationResult{}, errors.Join(domain.ErrGenerationFailed,
			zerr.With(zerr.Wrap(err, "generator invocation failed"), "exit_code", exitCode))
	}

	return readResult(resultFile)
}

// buildArgs assembles the JVM command line. The two option toggles travel as
// system properties because that is the only channel the tool reads them
// from.
func (g *Generator) buildArgs(req domain.GenerationRequest, opts domain.GeneratorOptions, resultFile string) []string {
	var args []string
	if g.classpath != "" {
		args = append(args, "-cp", g.classpath)
	}

	args = append(args,
		fmt.Sprintf("-Dgenerator.resolver.path=%s", req.ResolverPath),
		fmt.Sprintf("-Dgenerator.rest.generate.datatemplates=%t", opts.GenerateDataTemplates),
	)
	if opts.DefaultPackage != "" {
		args = append(args, fmt.Sprintf("-Dgenerator.default.package=%s", opts.DefaultPackage))
	}

	args = append(args,
		mainClass,
		"--resultFile", resultFile,
		"--version", req.Version,
		"--targetDir", req.OutputDir,
	)
	return append(args, req.InputFiles...)
}

// readResult parses the JSON manifest the generator writes. A missing
// manifest means the run produced nothing.
func readResult(path string) (domain.GenerationResult, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Temp path generated by this process
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.GenerationResult{}, nil
		}
		return domain.GenerationResult{}, zerr.Wrap(err, "failed to read generator result")
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.GenerationResult{}, zerr.Wrap(err, "failed to parse generator result")
	}
	return result, nil
}

// logWriter streams subprocess output lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
