// Package progrock records build-step progress on a progrock tape.
package progrock

import (
	"context"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

// groupName labels the group all generation vertexes render under.
const groupName = "restligen"

// Recorder implements ports.Telemetry on a progrock tape.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to a fresh tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w. All vertexes are grouped
// under the tool's name.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w).WithGroup(groupName),
	}
}

// Record starts a vertex for one unit of work. Each call gets a unique
// digest: watch mode records the same step name many times per process, and
// every run should render as its own vertex rather than updating the last
// one.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name + "." + uuid.NewString())
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close marks the group complete and releases the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
