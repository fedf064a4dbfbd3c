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


package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for vocabulary entries.
// It is generated from the entry's word using content-based hashing.
type ID uint64

// IDFromWord generates a deterministic ID from a word using BLAKE2b hashing.
// The word is lowercased first so that "Password" and "password" map to the
// same vocabulary entry.
func IDFromWord(word string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(strings.ToLower(word)))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Candidate pairs a word with a similarity score.
// Scores live in a model-defined range and are not guaranteed to be [0,1].
type Candidate struct {
	Word  string
	Score float32
}

// Words extracts just the words from a candidate list, discarding scores.
// Mutation treats all base words uniformly, so this is the hand-off point
// between the scored similarity stage and the lexical mutation stage.
func Words(candidates []Candidate) []string {
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.Word
	}
	return words
}

// WordVector is a persisted vocabulary entry: a word and its embedding.
// Vectors are stored unit-normalized so that cosine similarity reduces to
// a dot product.
type WordVector struct {
	Word   string
	Vector []float32
}
