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


// Package mutate generates lexical variants of words for wordlist expansion.
//
// The Engine applies five independent sub-generators to a word:
//
//   - Case folds: lower, upper, title, swap-case, and first-character toggle
//   - Leet-speak substitutions from a fixed table, single and multi position
//   - Common password suffixes (years, digit runs, punctuation)
//   - Common password prefixes
//   - Keyboard-adjacent single-character typos on a QWERTY layout
//
// Outputs are unioned, the original word is removed, and the result is
// sorted and truncated to the caller's variant budget. Multi-position
// leet-speak generation is capped to bound the combinatorial explosion on
// substitution-heavy words.
//
// The substitution, suffix, prefix, and adjacency tables are process-wide
// constant lookup data; engines carry no mutable state and are safe for
// concurrent use.
package mutate
