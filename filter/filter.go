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


package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnknownPredicate indicates a filter specification part that matches no
// known predicate form.
var ErrUnknownPredicate = errors.New("unknown filter predicate")

// Kind identifies a predicate variant.
type Kind int

const (
	// LengthGreaterThan keeps words with rune count > N.
	LengthGreaterThan Kind = iota
	// LengthLessThan keeps words with rune count < N.
	LengthLessThan
	// LengthEquals keeps words with rune count == N.
	LengthEquals
	// StartsWith keeps words with the given prefix (case-insensitive).
	StartsWith
	// EndsWith keeps words with the given suffix (case-insensitive).
	EndsWith
	// Contains keeps words containing the given substring (case-insensitive).
	Contains
	// Excludes keeps words NOT containing the given substring (case-insensitive).
	Excludes
)

// Predicate is one declarative filter rule. Length checks compare rune
// counts; string checks compare case-insensitively.
type Predicate struct {
	Kind   Kind
	Length int    // set for the Length* kinds
	Text   string // set for the string kinds, stored lowercased
}

// Match reports whether the word satisfies the predicate.
func (p Predicate) Match(word string) bool {
	switch p.Kind {
	case LengthGreaterThan:
		return utf8.RuneCountInString(word) > p.Length
	case LengthLessThan:
		return utf8.RuneCountInString(word) < p.Length
	case LengthEquals:
		return utf8.RuneCountInString(word) == p.Length
	case StartsWith:
		return strings.HasPrefix(strings.ToLower(word), p.Text)
	case EndsWith:
		return strings.HasSuffix(strings.ToLower(word), p.Text)
	case Contains:
		return strings.Contains(strings.ToLower(word), p.Text)
	case Excludes:
		return !strings.Contains(strings.ToLower(word), p.Text)
	default:
		return false
	}
}

// Parse turns a comma-separated filter specification into predicates.
// Recognized forms:
//
//	length>N  length<N  length=N
//	starts-with=S  ends-with=S  contains=S  excludes=S
//
// Empty parts are skipped; anything else is an ErrUnknownPredicate.
func Parse(spec string) ([]Predicate, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	var predicates []Predicate
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		p, err := parsePart(part)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, p)
	}
	return predicates, nil
}

func parsePart(part string) (Predicate, error) {
	switch {
	case strings.HasPrefix(part, "length>"):
		return lengthPredicate(LengthGreaterThan, part, strings.TrimPrefix(part, "length>"))
	case strings.HasPrefix(part, "length<"):
		return lengthPredicate(LengthLessThan, part, strings.TrimPrefix(part, "length<"))
	case strings.HasPrefix(part, "length="):
		return lengthPredicate(LengthEquals, part, strings.TrimPrefix(part, "length="))
	case strings.HasPrefix(part, "starts-with="):
		return textPredicate(StartsWith, strings.TrimPrefix(part, "starts-with=")), nil
	case strings.HasPrefix(part, "ends-with="):
		return textPredicate(EndsWith, strings.TrimPrefix(part, "ends-with=")), nil
	case strings.HasPrefix(part, "contains="):
		return textPredicate(Contains, strings.TrimPrefix(part, "contains=")), nil
	case strings.HasPrefix(part, "excludes="):
		return textPredicate(Excludes, strings.TrimPrefix(part, "excludes=")), nil
	default:
		return Predicate{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, part)
	}
}

func lengthPredicate(kind Kind, part, arg string) (Predicate, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Predicate{}, fmt.Errorf("%w: %q: %w", ErrUnknownPredicate, part, err)
	}
	return Predicate{Kind: kind, Length: n}, nil
}

func textPredicate(kind Kind, arg string) Predicate {
	return Predicate{Kind: kind, Text: strings.ToLower(arg)}
}

// Apply returns the subsequence of words for which every predicate holds.
// With no predicates it returns the input unchanged.
func Apply(words []string, predicates []Predicate) []string {
	if len(predicates) == 0 {
		return words
	}

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if matchAll(word, predicates) {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

func matchAll(word string, predicates []Predicate) bool {
	for _, p := range predicates {
		if !p.Match(word) {
			return false
		}
	}
	return true
}
