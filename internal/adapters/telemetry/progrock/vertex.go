package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
)

// Vertex adapts one *progrock.VertexRecorder to ports.Vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex's standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex's error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a leveled message on the vertex. Warnings and errors go to the
// error stream so they stand out in the rendered tape.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	out := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		out = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(out, "[%s] %s\n", level.String(), msg)
}

// Complete finishes the vertex, recording err when the work failed.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached finishes the vertex as skipped because its inputs were unchanged.
func (v *Vertex) Cached() {
	v.vertex.Cached()
	v.vertex.Done(nil)
}
