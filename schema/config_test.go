package schema_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/schema"
)

const sampleYAML = `
seed: 7
types:
  - {alias: A, size: 3}
  - {alias: B, size: 2, scalable: true}
predicates:
  - {alias: knows}
edge_types:
  - id: 0
    subject: 0
    object: 1
    predicate: 0
    outgoing: {kind: uniform, arg1: 1, arg2: 3}
    incoming: {kind: Zipfian, arg1: 2.5}
`

func TestParse_Sample(t *testing.T) {
	cfg, err := schema.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	require.Len(t, cfg.Types, 2)
	assert.Equal(t, schema.NodeType{Alias: "B", Size: 2, Scalable: true}, cfg.Types[1])
	require.Len(t, cfg.EdgeTypes, 1)

	e := cfg.EdgeTypes[0]
	assert.Equal(t, schema.UniformDist(1, 3), e.Outgoing)
	assert.Equal(t, schema.ZipfianDist(2.5, 0), e.Incoming)
	assert.Equal(t, 3, cfg.Iterations(e))
	assert.Equal(t, "knows", cfg.PredicateAlias(e.Predicate))
	assert.Equal(t, "", cfg.TypeAlias(9))
}

func TestParse_UnknownKind(t *testing.T) {
	doc := `
types: [{alias: A, size: 1}]
predicates: [{alias: p}]
edge_types:
  - {id: 0, subject: 0, object: 0, predicate: 0, outgoing: {kind: poisson}}
`
	_, err := schema.Parse([]byte(doc))
	require.ErrorIs(t, err, schema.ErrUnknownKind)
}

func TestParse_NonFiniteArguments(t *testing.T) {
	for _, arg := range []string{".nan", ".inf", "-.inf", "1e30"} {
		doc := `
types: [{alias: A, size: 2}]
predicates: [{alias: p}]
edge_types:
  - {id: 0, subject: 0, object: 0, predicate: 0, outgoing: {kind: normal, arg1: ` + arg + `, arg2: 1}}
`
		_, err := schema.Parse([]byte(doc))
		require.ErrorIs(t, err, schema.ErrBadDistribution, "arg1=%s", arg)
	}
}

func TestLoad_FileAndMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := schema.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Types, 2)

	_, err = schema.Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := &schema.Config{Seed: 1}

	t.Setenv(schema.EnvSeed, "not-a-number")
	assert.False(t, schema.ApplyEnv(cfg))
	assert.Equal(t, int64(1), cfg.Seed)

	t.Setenv(schema.EnvSeed, " 99 ")
	assert.True(t, schema.ApplyEnv(cfg))
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestValidate_Errors(t *testing.T) {
	base := func() schema.Config {
		return schema.Config{
			Types:      []schema.NodeType{{Alias: "A", Size: 2}},
			Predicates: []schema.Predicate{{Alias: "p"}},
			EdgeTypes: []schema.EdgeType{{
				ID: 0, Outgoing: schema.UniformDist(1, 1), Incoming: schema.UniformDist(1, 1),
			}},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *schema.Config)
		want   error
	}{
		{"negative size", func(c *schema.Config) { c.Types[0].Size = -1 }, schema.ErrBadSize},
		{"edge id out of range", func(c *schema.Config) { c.EdgeTypes[0].ID = 1 }, schema.ErrDuplicateEdgeType},
		{"duplicate edge id", func(c *schema.Config) {
			c.EdgeTypes = append(c.EdgeTypes, c.EdgeTypes[0])
		}, schema.ErrDuplicateEdgeType},
		{"subject", func(c *schema.Config) { c.EdgeTypes[0].SubjectType = 3 }, schema.ErrIndexOutOfRange},
		{"object", func(c *schema.Config) { c.EdgeTypes[0].ObjectType = -1 }, schema.ErrIndexOutOfRange},
		{"predicate", func(c *schema.Config) { c.EdgeTypes[0].Predicate = 1 }, schema.ErrIndexOutOfRange},
		{"uniform min>max", func(c *schema.Config) { c.EdgeTypes[0].Outgoing = schema.UniformDist(3, 1) }, schema.ErrBadDistribution},
		{"uniform fractional", func(c *schema.Config) {
			c.EdgeTypes[0].Outgoing = schema.Distribution{Kind: schema.Uniform, Arg1: 0.5, Arg2: 2}
		}, schema.ErrBadDistribution},
		{"normal sd<0", func(c *schema.Config) { c.EdgeTypes[0].Incoming = schema.NormalDist(3, -1) }, schema.ErrBadDistribution},
		{"zipf s<=0", func(c *schema.Config) { c.EdgeTypes[0].Incoming = schema.ZipfianDist(0, 0) }, schema.ErrBadDistribution},
		{"zipf q<0", func(c *schema.Config) { c.EdgeTypes[0].Incoming = schema.ZipfianDist(2, -1) }, schema.ErrBadDistribution},
		{"unknown kind", func(c *schema.Config) { c.EdgeTypes[0].Incoming.Kind = 42 }, schema.ErrUnknownKind},
		{"normal mean NaN", func(c *schema.Config) { c.EdgeTypes[0].Outgoing = schema.NormalDist(math.NaN(), 1) }, schema.ErrBadDistribution},
		{"normal sd +Inf", func(c *schema.Config) { c.EdgeTypes[0].Outgoing = schema.NormalDist(2, math.Inf(1)) }, schema.ErrBadDistribution},
		{"normal mean too large", func(c *schema.Config) { c.EdgeTypes[0].Outgoing = schema.NormalDist(1e30, 0) }, schema.ErrBadDistribution},
		{"uniform max too large", func(c *schema.Config) { c.EdgeTypes[0].Outgoing = schema.UniformDist(0, 1<<40) }, schema.ErrBadDistribution},
		{"zipf s NaN", func(c *schema.Config) { c.EdgeTypes[0].Incoming = schema.ZipfianDist(math.NaN(), 0) }, schema.ErrBadDistribution},
		{"zipf q NaN", func(c *schema.Config) { c.EdgeTypes[0].Incoming = schema.ZipfianDist(2, math.NaN()) }, schema.ErrBadDistribution},
		{"undefined -Inf", func(c *schema.Config) {
			c.EdgeTypes[0].Incoming = schema.Distribution{Kind: schema.Undefined, Arg1: math.Inf(-1)}
		}, schema.ErrBadDistribution},
	}

	ok := base()
	require.NoError(t, ok.Validate())

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}
