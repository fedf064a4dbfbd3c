package semantic

import (
	"context"

	"github.com/kestrelsec/wordlex/core"
)

// SimilarityProvider returns semantically related words for a seed word.
// Implementations must be thread-safe for concurrent use.
type SimilarityProvider interface {
	// Similar returns up to topK words related to word, ordered by
	// descending score, with all scores >= threshold.
	// A word unknown to the provider's vocabulary yields an empty slice,
	// not an error.
	Similar(ctx context.Context, word string, topK int, threshold float32) ([]core.Candidate, error)

	// SimilarBatch answers one lookup per word, returning a map from each
	// input word to its own candidate list (same contract as Similar,
	// per word). Implementations may parallelize internally.
	SimilarBatch(ctx context.Context, words []string, topK int, threshold float32) (map[string][]core.Candidate, error)
}

// Reranker blends a second model's similarity signal into candidate scores.
// Implementations must be thread-safe for concurrent use.
type Reranker interface {
	// Rerank returns the same candidates with blended scores, ordered by
	// descending blended score. For each candidate,
	//
	//	blended = (1-weight)*original + weight*modelScore
	//
	// where weight is in [0,1].
	Rerank(ctx context.Context, seed string, candidates []core.Candidate, weight float32) ([]core.Candidate, error)
}

// Encoder produces sentence embeddings used for reranking and for building
// vocabulary vectors at import time.
// Implementations must be thread-safe for concurrent use.
type Encoder interface {
	// Encode generates unit-normalized embeddings for the given texts,
	// in input order.
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}
