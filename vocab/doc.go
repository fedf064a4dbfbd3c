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


// Package vocab provides a BadgerDB-backed word-vector vocabulary.
//
// The Store persists unit-normalized word embeddings and answers
// nearest-neighbor queries by a cosine scan, making it the production
// implementation of semantic.SimilarityProvider. Batch queries run per-word
// lookups with bounded internal parallelism.
//
// Entries are keyed by a content-based ID of the lowercased word, so
// lookups are case-insensitive and re-imports overwrite in place. Values
// are serialized with the MUS format.
//
// The Importer fills a store either from a word2vec-style text vector file
// or by embedding plain words through a semantic.Encoder.
package vocab
