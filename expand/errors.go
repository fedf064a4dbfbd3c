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


package expand

import (
	"errors"
	"fmt"
)

var (
	// ErrSimilarityProviderRequired is returned when a similarity provider
	// is not provided.
	ErrSimilarityProviderRequired = errors.New("similarity provider required")

	// ErrInvalidWorkers is returned when a worker pool size below 1 is requested.
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)

// Stage identifies where in a seed's expansion pipeline a failure occurred.
type Stage string

const (
	// StageSimilarity covers similarity provider lookups.
	StageSimilarity Stage = "similarity"
	// StageRerank covers reranker calls.
	StageRerank Stage = "rerank"
)

// SeedError reports a collaborator failure for one seed's unit of work.
// It carries the seed and the pipeline stage so the caller can decide
// whether to abort the run or skip the seed.
type SeedError struct {
	Seed  string
	Stage Stage
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed %q: %s stage: %v", e.Seed, e.Stage, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}
