package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full specification", func(t *testing.T) {
		predicates, err := Parse("length>4,starts-with=pa,excludes=xyz")
		require.NoError(t, err)
		require.Len(t, predicates, 3)
		assert.Equal(t, Predicate{Kind: LengthGreaterThan, Length: 4}, predicates[0])
		assert.Equal(t, Predicate{Kind: StartsWith, Text: "pa"}, predicates[1])
		assert.Equal(t, Predicate{Kind: Excludes, Text: "xyz"}, predicates[2])
	})

	t.Run("length variants", func(t *testing.T) {
		predicates, err := Parse("length<12,length=8")
		require.NoError(t, err)
		require.Len(t, predicates, 2)
		assert.Equal(t, Predicate{Kind: LengthLessThan, Length: 12}, predicates[0])
		assert.Equal(t, Predicate{Kind: LengthEquals, Length: 8}, predicates[1])
	})

	t.Run("text arguments are lowercased", func(t *testing.T) {
		predicates, err := Parse("contains=ADMIN,ends-with=ING")
		require.NoError(t, err)
		require.Len(t, predicates, 2)
		assert.Equal(t, "admin", predicates[0].Text)
		assert.Equal(t, "ing", predicates[1].Text)
	})

	t.Run("whitespace and empty parts skipped", func(t *testing.T) {
		predicates, err := Parse(" length>4 , , starts-with=pa ")
		require.NoError(t, err)
		assert.Len(t, predicates, 2)
	})

	t.Run("empty specification", func(t *testing.T) {
		predicates, err := Parse("")
		require.NoError(t, err)
		assert.Empty(t, predicates)
	})

	t.Run("unknown predicate", func(t *testing.T) {
		_, err := Parse("length>4,frobnicates=yes")
		assert.ErrorIs(t, err, ErrUnknownPredicate)
	})

	t.Run("non-numeric length", func(t *testing.T) {
		_, err := Parse("length>many")
		assert.ErrorIs(t, err, ErrUnknownPredicate)
	})
}

func TestApply(t *testing.T) {
	words := []string{"Pass1", "password", "pa", "admin", "PASSWORD123"}

	t.Run("length and prefix", func(t *testing.T) {
		predicates, err := Parse("length>4,starts-with=pa")
		require.NoError(t, err)

		// "Pass1" is 5 runes, so it clears the >4 boundary.
		got := Apply(words, predicates)
		assert.Equal(t, []string{"Pass1", "password", "PASSWORD123"}, got)
	})

	t.Run("boundary length passes", func(t *testing.T) {
		predicates, err := Parse("length>4,starts-with=pa")
		require.NoError(t, err)
		got := Apply([]string{"pass", "passw0rd", "Pass1", "xyz"}, predicates)
		assert.Equal(t, []string{"passw0rd", "Pass1"}, got)
	})

	t.Run("excludes", func(t *testing.T) {
		predicates, err := Parse("excludes=word")
		require.NoError(t, err)
		got := Apply(words, predicates)
		assert.Equal(t, []string{"Pass1", "pa", "admin"}, got)
	})

	t.Run("contains is case-insensitive", func(t *testing.T) {
		predicates, err := Parse("contains=pass")
		require.NoError(t, err)
		got := Apply(words, predicates)
		assert.Equal(t, []string{"Pass1", "password", "PASSWORD123"}, got)
	})

	t.Run("ends-with", func(t *testing.T) {
		predicates, err := Parse("ends-with=123")
		require.NoError(t, err)
		got := Apply(words, predicates)
		assert.Equal(t, []string{"PASSWORD123"}, got)
	})

	t.Run("exact length", func(t *testing.T) {
		predicates, err := Parse("length=5")
		require.NoError(t, err)
		got := Apply(words, predicates)
		assert.Equal(t, []string{"Pass1", "admin"}, got)
	})

	t.Run("no predicates is identity", func(t *testing.T) {
		got := Apply(words, nil)
		assert.Equal(t, words, got)
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		predicates, err := Parse("length=4")
		require.NoError(t, err)
		got := Apply([]string{"pässe", "päss"}, predicates)
		assert.Equal(t, []string{"päss"}, got)
	})
}
