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
	"fmt"
	"strings"
)

// ValidateWordVector checks that a vocabulary entry is well-formed:
//   - Word must not be empty (after trimming whitespace)
//   - Vector must have at least one component
func ValidateWordVector(wv *WordVector) error {
	if strings.TrimSpace(wv.Word) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordVector, ErrEmptyWord)
	}
	if len(wv.Vector) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidWordVector, ErrEmptyVector)
	}
	return nil
}
