package vocab

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsec/wordlex/semantic"
	"github.com/kestrelsec/wordlex/semantic/mock"
)

func TestNewImporter(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	defer store.Close()

	t.Run("valid", func(t *testing.T) {
		imp, err := NewImporter(store)
		require.NoError(t, err)
		assert.NotNil(t, imp)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewImporter(nil)
		assert.Equal(t, ErrStoreRequired, err)
	})
}

func TestImporter_ImportVectorFile(t *testing.T) {
	ctx := context.Background()

	t.Run("word2vec text format with header", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		imp, err := NewImporter(store, WithBatchSize(2))
		require.NoError(t, err)

		input := "3 2\npassword 1 0\npasscode 0.8 0.6\nadmin 0 1\n"
		n, err := imp.ImportVectorFile(ctx, strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		entry, err := store.Get(ctx, "passcode")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.InDelta(t, 0.8, entry.Vector[0], 1e-6)
	})

	t.Run("headerless file", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		imp, err := NewImporter(store)
		require.NoError(t, err)

		n, err := imp.ImportVectorFile(ctx, strings.NewReader("login 0.5 0.5\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("malformed component", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		imp, err := NewImporter(store)
		require.NoError(t, err)

		_, err = imp.ImportVectorFile(ctx, strings.NewReader("password 1 nope\n"))
		assert.ErrorIs(t, err, ErrMalformedEntry)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		imp, err := NewImporter(store)
		require.NoError(t, err)

		n, err := imp.ImportVectorFile(ctx, strings.NewReader("\npassword 1 0\n\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestImporter_ImportWords(t *testing.T) {
	ctx := context.Background()

	t.Run("embeds through the encoder", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		encoder := mock.NewMockEncoder()
		imp, err := NewImporter(store, WithEncoder(encoder), WithBatchSize(2))
		require.NoError(t, err)

		n, err := imp.ImportWords(ctx, []string{"password", "admin", "login"})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, 2, encoder.CallCount(), "3 words with batch size 2 means 2 encode calls")

		entry, err := store.Get(ctx, "login")
		require.NoError(t, err)
		assert.NotNil(t, entry)
	})

	t.Run("no encoder configured", func(t *testing.T) {
		store, err := NewMemoryStore()
		require.NoError(t, err)
		defer store.Close()

		imp, err := NewImporter(store)
		require.NoError(t, err)

		_, err = imp.ImportWords(ctx, []string{"password"})
		assert.ErrorIs(t, err, semantic.ErrEncoderRequired)
	})
}
