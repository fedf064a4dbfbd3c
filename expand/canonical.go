package expand

import (
	"sort"
	"strings"
)

// CanonicalizeList deduplicates and sorts an already-ordered word list.
//
// In case-sensitive mode the dedup key is the word itself and the sort is
// by raw code-point order. In case-insensitive mode the key is the
// lowercased word, the first-encountered casing wins, and the sort is by
// the lowercase key.
func CanonicalizeList(words []string, caseSensitive bool) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		key := w
		if !caseSensitive {
			key = strings.ToLower(w)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, w)
	}

	if caseSensitive {
		sort.Strings(unique)
	} else {
		// Distinct survivors never share a lowercase key, so this order
		// is total and deterministic.
		sort.Slice(unique, func(i, j int) bool {
			return strings.ToLower(unique[i]) < strings.ToLower(unique[j])
		})
	}
	return unique
}

// Encounter ranks for result-set words. The pipeline meets base words
// (the seed and its neighbors) before the mutations derived from them, so
// base words carry the lower rank and their casing survives a
// case-insensitive collision with a variant.
const (
	rankBase = iota
	rankVariant
)

// canonicalize materializes a ranked result set as a deduplicated, sorted
// list. Words are replayed in encounter order: by rank, then by raw code
// point, so the winning casing under a case-insensitive key is
// deterministic regardless of which parallel batch produced it.
func canonicalize(words map[string]int, caseSensitive bool) []string {
	list := make([]string, 0, len(words))
	for w := range words {
		list = append(list, w)
	}
	sort.Slice(list, func(i, j int) bool {
		if words[list[i]] != words[list[j]] {
			return words[list[i]] < words[list[j]]
		}
		return list[i] < list[j]
	})
	return CanonicalizeList(list, caseSensitive)
}
