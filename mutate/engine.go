// Copyright 2026 Kestrel Security
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mutate

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

const (
	// defaultMaxPositions bounds how many character positions a single
	// leet variant may substitute at once.
	defaultMaxPositions = 3

	// leetVariantCap bounds the total number of leet variants generated for
	// one word. Generation halts as soon as the cap is reached; the variant
	// list is not guaranteed complete past this point.
	leetVariantCap = 500
)

// ErrInvalidMaxPositions is returned when WithMaxPositions receives a value below 1.
var ErrInvalidMaxPositions = errors.New("max positions must be at least 1")

// Engine generates bounded sets of lexical variants for a word:
// case folds, leet-speak substitutions, common prefixes and suffixes,
// and keyboard-adjacent single-character typos.
//
// Engines are stateless after construction and safe for concurrent use.
type Engine struct {
	maxPositions int
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMaxPositions sets the maximum number of simultaneous leet-speak
// substitution positions. Default is 3.
func WithMaxPositions(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return ErrInvalidMaxPositions
		}
		e.maxPositions = n
		return nil
	}
}

// NewEngine creates a mutation engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{maxPositions: defaultMaxPositions}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

var defaultEngine = &Engine{maxPositions: defaultMaxPositions}

// Mutate generates lexical variants of word using the default engine.
// See Engine.Mutate.
func Mutate(word string, maxVariants int) []string {
	return defaultEngine.Mutate(word, maxVariants)
}

// Mutate generates lexical variants of word.
//
// All sub-generator outputs are unioned into a set, the original word is
// removed, and the result is sorted ascending by code point and truncated
// to maxVariants. Sorting on the raw string keeps the output deterministic
// and independent of the caller's case-sensitivity mode.
//
// There are no failure modes: every input maps to a (possibly empty) set.
func (e *Engine) Mutate(word string, maxVariants int) []string {
	if maxVariants <= 0 {
		return []string{}
	}

	variants := make(map[string]struct{})

	add := func(words []string) {
		for _, w := range words {
			variants[w] = struct{}{}
		}
	}

	add(caseVariants(word))
	add(e.leetVariants(word))
	add(suffixVariants(word))
	add(prefixVariants(word))
	add(keyboardTypos(word))

	delete(variants, word) // remove original

	result := make([]string, 0, len(variants))
	for w := range variants {
		result = append(result, w)
	}
	sort.Strings(result)

	if len(result) > maxVariants {
		result = result[:maxVariants]
	}
	return result
}

// caseVariants produces at most 6 case folds of word.
func caseVariants(word string) []string {
	variants := []string{
		strings.ToLower(word),
		strings.ToUpper(word),
		titleCase(word),
		swapCase(word),
		titleCase(strings.ToLower(word)),
	}
	// Also toggle first char
	if len(word) > 0 {
		runes := []rune(word)
		runes[0] = swapRune(runes[0])
		variants = append(variants, string(runes))
	}
	return variants
}

// leetVariants substitutes leet-speak characters into the lowercased word.
// Single-position substitutions come first, then combinations of 2 up to
// maxPositions positions with the full cross product of replacement choices,
// halting at leetVariantCap.
func (e *Engine) leetVariants(word string) []string {
	lower := []rune(strings.ToLower(word))

	// Determine where leet substitutions are possible
	var positions []int
	for i, ch := range lower {
		if _, ok := leetTable[ch]; ok {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil
	}

	variants := make([]string, 0, len(positions)*2)

	// Single-char substitutions
	for _, pos := range positions {
		for _, repl := range leetTable[lower[pos]] {
			chars := append([]rune(nil), lower...)
			chars[pos] = repl
			variants = append(variants, string(chars))
		}
	}

	// Multi-char substitutions, limited to maxPositions positions and
	// capped in total to bound the combinatorial explosion.
	maxSize := e.maxPositions
	if len(positions) < maxSize {
		maxSize = len(positions)
	}
	combo := make([]int, 0, maxSize)
	for size := 2; size <= maxSize; size++ {
		if !emitCombinations(lower, positions, combo[:0], size, 0, &variants) {
			return variants
		}
	}
	return variants
}

// emitCombinations walks combinations of substitutable positions of the given
// size in ascending index order, emitting one variant per tuple of replacement
// choices. Returns false once the variant cap is reached.
func emitCombinations(lower []rune, positions []int, combo []int, size, start int, out *[]string) bool {
	if len(combo) == size {
		chars := append([]rune(nil), lower...)
		return emitReplacements(lower, combo, 0, chars, out)
	}
	for i := start; i <= len(positions)-(size-len(combo)); i++ {
		if !emitCombinations(lower, positions, append(combo, positions[i]), size, i+1, out) {
			return false
		}
	}
	return true
}

// emitReplacements expands the cross product of replacement choices across
// the chosen positions. Returns false once the variant cap is reached.
func emitReplacements(lower []rune, combo []int, depth int, chars []rune, out *[]string) bool {
	if depth == len(combo) {
		if len(*out) >= leetVariantCap {
			return false
		}
		*out = append(*out, string(chars))
		return true
	}
	pos := combo[depth]
	for _, repl := range leetTable[lower[pos]] {
		chars[pos] = repl
		if !emitReplacements(lower, combo, depth+1, chars, out) {
			return false
		}
	}
	chars[pos] = lower[pos]
	return true
}

// suffixVariants appends each common suffix to word.
func suffixVariants(word string) []string {
	variants := make([]string, len(commonSuffixes))
	for i, suffix := range commonSuffixes {
		variants[i] = word + suffix
	}
	return variants
}

// prefixVariants prepends each common prefix to word.
func prefixVariants(word string) []string {
	variants := make([]string, len(commonPrefixes))
	for i, prefix := range commonPrefixes {
		variants[i] = prefix + word
	}
	return variants
}

// keyboardTypos replaces each character of the lowercased word with its
// QWERTY-adjacent neighbors, one position at a time. Characters with no
// adjacency entry contribute nothing.
func keyboardTypos(word string) []string {
	lower := []rune(strings.ToLower(word))
	var variants []string

	for i, ch := range lower {
		for _, adj := range keyboardAdjacent[ch] {
			chars := append([]rune(nil), lower...)
			chars[i] = adj
			variants = append(variants, string(chars))
		}
	}
	return variants
}

// titleCase uppercases the first rune and lowercases the rest.
func titleCase(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// swapCase inverts the case of every letter.
func swapCase(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = swapRune(r)
	}
	return string(runes)
}

func swapRune(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	default:
		return r
	}
}
