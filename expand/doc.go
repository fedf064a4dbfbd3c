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


// Package expand orchestrates wordlist expansion.
//
// For each seed word the Expander queries a semantic.SimilarityProvider for
// neighbors, optionally blends in a semantic.Reranker's scores, then unions
// the seed, its neighbors, and their lexical mutations into a result set.
// Batches fan out over a bounded worker pool; each unit of work produces
// its own local set and a single-threaded reducer merges them, so the
// merge needs no locking and result correctness does not depend on
// completion order.
//
// The final list is deduplicated and sorted under the configured case
// policy: the word itself in case-sensitive mode, its lowercase form
// otherwise, with the first-encountered casing winning a collision.
//
// Failures carry the seed and pipeline stage via *SeedError. A missing
// provider is rejected at construction time; a seed missing from the
// provider's vocabulary is not an error and degrades to the seed alone.
package expand
