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


// Package openai implements semantic services over OpenAI-compatible APIs.
//
// It works with any server exposing the OpenAI embeddings endpoint,
// including Ollama, LocalAI, and vLLM. The Encoder produces unit-normalized
// sentence embeddings; the Reranker blends their cosine similarity into
// existing candidate scores.
package openai
