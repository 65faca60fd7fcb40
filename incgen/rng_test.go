package incgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/incgraph/incgen"
)

func TestGenerationContext_Streams(t *testing.T) {
	t.Parallel()

	ctx := incgen.NewGenerationContext(5, 3)
	assert.Equal(t, int64(5), ctx.Seed())

	a, b := ctx.Stream(1), ctx.Stream(1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "same id, same stream")
	}
	assert.NotEqual(t, ctx.Stream(0).Int63(), ctx.Stream(1).Int63())
	assert.NotEqual(t, ctx.Stream(2).Int63(), incgen.NewGenerationContext(6, 3).Stream(2).Int63())

	// streams depend only on (seed, id), not on the number of edge-types
	assert.Equal(t, ctx.Stream(1).Int63(), incgen.NewGenerationContext(5, 10).Stream(1).Int63())

	// ids beyond the prepared table still yield a deterministic stream
	assert.Equal(t, ctx.Stream(9).Int63(), ctx.Stream(9).Int63())
}

func TestGenerationContext_DefaultSeed(t *testing.T) {
	t.Parallel()

	ctx := incgen.NewGenerationContext(0, 1)
	assert.Equal(t, incgen.DefaultSeed, ctx.Seed())
	assert.Equal(t, incgen.NewGenerationContext(incgen.DefaultSeed, 1).Stream(0).Int63(), ctx.Stream(0).Int63())
}

// Pinned outputs: stream seeds must not drift, or every stored schema
// would generate a different graph.
func TestDeriveSeed_Pinned(t *testing.T) {
	assert.Equal(t, int64(8986751157511056776), incgen.ExportedDeriveSeed(222, 0))
	assert.Equal(t, int64(4673086115051657023), incgen.ExportedDeriveSeed(222, 1))
	assert.Equal(t, int64(-8712567848370274633), incgen.ExportedDeriveSeed(-1, 7))
}
