package progrock_test

import (
	"context"
	"testing"

	vitoprogrock "github.com/vito/progrock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConnectionMaster/restligen/internal/adapters/telemetry/progrock"
	"github.com/ConnectionMaster/restligen/internal/core/domain"
	"github.com/ConnectionMaster/restligen/internal/core/ports"
)

func TestRecorder_Record(t *testing.T) {
	rec := progrock.NewRecorder(vitoprogrock.NewTape())

	ctx, vertex := rec.Record(context.Background(), "generate rest client builders")
	require.NotNil(t, vertex)

	carried, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, carried)

	vertex.Log(domain.LogLevelInfo, "generating")
	vertex.Log(domain.LogLevelError, "schema missing")
	vertex.Complete(nil)

	assert.NoError(t, rec.Close())
}

func TestRecorder_Record_DistinctVertexesPerRun(t *testing.T) {
	rec := progrock.NewRecorder(vitoprogrock.NewTape())

	_, first := rec.Record(context.Background(), "generate rest client builders")
	_, second := rec.Record(context.Background(), "generate rest client builders")

	// Repeated runs of the same step (watch mode) must not collapse into a
	// single vertex.
	assert.NotSame(t, first, second)

	first.Cached()
	second.Complete(nil)
	assert.NoError(t, rec.Close())
}
