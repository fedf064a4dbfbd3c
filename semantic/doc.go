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


// Package semantic defines the collaborator interfaces consumed by the
// expansion pipeline.
//
// The package is designed around three interfaces:
//
//   - SimilarityProvider: nearest-neighbor lookup over a word vocabulary
//   - Reranker: blends a second model's similarity signal into candidate scores
//   - Encoder: sentence embeddings backing the reranker and vocabulary imports
//
// The expansion core depends only on these abstractions, never on a specific
// model's loading mechanism. Swapping model families means swapping
// implementations.
//
// # Implementation Packages
//
//   - semantic/openai: production Encoder and Reranker over OpenAI-compatible APIs
//   - semantic/mock: test doubles for unit testing without external services
//   - vocab: a BadgerDB-backed SimilarityProvider over a local word-vector store
//
// Public constructors in implementation packages return interface types to
// enforce abstraction; mock constructors return concrete types so tests can
// inject behavior and assert call counts.
package semantic
