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


// Package filter narrows wordlists with declarative predicates.
//
// A specification is a comma-separated list such as
// "length>4,starts-with=pa,excludes=xyz"; every predicate must hold for a
// word to survive. Length checks count runes, string checks ignore case,
// and an unrecognized predicate is a parse error rather than silently
// ignored.
package filter
