package wordlex

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/expand"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, gen.Close())
	})
	return gen
}

func TestNewGenerator_InMemory(t *testing.T) {
	gen := newTestGenerator(t)
	assert.NotNil(t, gen.Store())
}

func TestNewGenerator_OnDisk(t *testing.T) {
	gen, err := NewGenerator(t.TempDir() + "/vocab")
	require.NoError(t, err)
	require.NoError(t, gen.Close())
}

func TestGenerator_EndToEnd(t *testing.T) {
	gen := newTestGenerator(t)
	ctx := context.Background()

	err := gen.Store().Add(ctx,
		&core.WordVector{Word: "password", Vector: []float32{1, 0}},
		&core.WordVector{Word: "passcode", Vector: []float32{0.8, 0.6}},
		&core.WordVector{Word: "admin", Vector: []float32{0, 1}},
	)
	require.NoError(t, err)

	expander, err := gen.NewExpander(expand.WithTopK(5), expand.WithSimilarityThreshold(0.5))
	require.NoError(t, err)

	words, err := expander.Expand(ctx, "password")
	require.NoError(t, err)
	assert.Equal(t, []string{"passcode", "password"}, words)
}

func TestGenerator_Importer(t *testing.T) {
	gen := newTestGenerator(t)
	ctx := context.Background()

	importer, err := gen.NewImporter()
	require.NoError(t, err)

	data := "2 2\npassword 1 0\nadmin 0 1\n"
	n, err := importer.ImportVectorFile(ctx, strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := gen.Store().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
