package mutate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := NewEngine()
		require.NoError(t, err)
		assert.Equal(t, defaultMaxPositions, engine.maxPositions)
	})

	t.Run("with max positions", func(t *testing.T) {
		engine, err := NewEngine(WithMaxPositions(2))
		require.NoError(t, err)
		assert.Equal(t, 2, engine.maxPositions)
	})

	t.Run("invalid max positions", func(t *testing.T) {
		_, err := NewEngine(WithMaxPositions(0))
		assert.ErrorIs(t, err, ErrInvalidMaxPositions)
	})
}

func TestMutate_NeverContainsInput(t *testing.T) {
	words := []string{"cat", "Password", "ADMIN", "x", "", "1337"}
	for _, word := range words {
		variants := Mutate(word, 1000)
		assert.NotContains(t, variants, word, "variants of %q must not contain the word itself", word)
	}
}

func TestMutate_Deterministic(t *testing.T) {
	first := Mutate("password", 100)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Mutate("password", 100))
	}
}

func TestMutate_Sorted(t *testing.T) {
	variants := Mutate("secret", 500)
	require.NotEmpty(t, variants)
	assert.True(t, sortedAscending(variants), "variants must be sorted by code point")
}

func TestMutate_TruncationMonotonic(t *testing.T) {
	small := Mutate("password", 10)
	large := Mutate("password", 100)

	require.Len(t, small, 10)
	require.True(t, len(large) >= len(small))
	assert.Equal(t, large[:len(small)], small, "smaller budget must be a prefix of the larger one")
}

func TestMutate_CatExamples(t *testing.T) {
	variants := Mutate("cat", 100)

	for _, want := range []string{"Cat", "CAT", "c@t", "cat1", "!cat", "xat"} {
		assert.Contains(t, variants, want)
	}
	assert.NotContains(t, variants, "cat")
}

func TestMutate_ZeroBudget(t *testing.T) {
	assert.Empty(t, Mutate("password", 0))
	assert.Empty(t, Mutate("password", -1))
}

func TestMutate_EmptyWord(t *testing.T) {
	// No failure modes: empty input yields a set without faulting, and the
	// (empty) original never appears in it.
	variants := Mutate("", 1000)
	assert.NotContains(t, variants, "")
}

func TestCaseVariants(t *testing.T) {
	variants := caseVariants("paSsword")

	assert.Contains(t, variants, "password")
	assert.Contains(t, variants, "PASSWORD")
	assert.Contains(t, variants, "Password")
	assert.Contains(t, variants, "PAsSWORD") // swap-case
	assert.Contains(t, variants, "PaSsword") // first char toggled, rest preserved
	assert.LessOrEqual(t, len(variants), 6)
}

func TestLeetVariants_CapHolds(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	// Every position substitutable with 3 choices: the cross product blows
	// far past the cap without the bound.
	variants := engine.leetVariants(strings.Repeat("i", 8))
	assert.LessOrEqual(t, len(variants), leetVariantCap)
	assert.Equal(t, leetVariantCap, len(variants), "generation should fill up to the cap")
}

func TestLeetVariants_NoSubstitutableChars(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	assert.Empty(t, engine.leetVariants("mmm"))
}

func TestLeetVariants_SinglePosition(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	variants := engine.leetVariants("cat")
	assert.Contains(t, variants, "c@t")
	assert.Contains(t, variants, "c4t")
	assert.Contains(t, variants, "(at")
	assert.Contains(t, variants, "ca7")
	// Multi-position cross product
	assert.Contains(t, variants, "(@7")
}

func TestLeetVariants_OperatesOnLowercase(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	variants := engine.leetVariants("CAT")
	assert.Contains(t, variants, "c@t")
}

func TestSuffixVariants(t *testing.T) {
	variants := suffixVariants("cat")
	assert.Contains(t, variants, "cat1")
	assert.Contains(t, variants, "cat123")
	assert.Contains(t, variants, "cat2026")
	assert.NotContains(t, variants, "cat") // empty suffix excluded
}

func TestPrefixVariants(t *testing.T) {
	variants := prefixVariants("cat")
	assert.Equal(t, []string{"!cat", "@cat", "#cat", "1cat", "thecat", "mycat"}, variants)
}

func TestKeyboardTypos(t *testing.T) {
	variants := keyboardTypos("cat")
	assert.Contains(t, variants, "xat") // x adjacent to c
	assert.Contains(t, variants, "car") // r adjacent to t
	assert.Contains(t, variants, "cqt") // q adjacent to a

	// No adjacency entry means no contribution for that position.
	assert.Empty(t, keyboardTypos("@#!"))
}

func sortedAscending(words []string) bool {
	for i := 1; i < len(words); i++ {
		if words[i-1] > words[i] {
			return false
		}
	}
	return true
}
