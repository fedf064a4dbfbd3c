package openai

import (
	"context"
	"log/slog"
	"sort"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/semantic"
)

// Reranker implements semantic.Reranker by blending the cosine similarity
// of encoder embeddings into the candidates' original scores.
type Reranker struct {
	encoder semantic.Encoder
	logger  *slog.Logger
}

// NewReranker creates a reranker backed by an OpenAI-compatible encoder.
//
// Returns semantic.Reranker interface to enforce abstraction.
func NewReranker(config *semantic.Config) (semantic.Reranker, error) {
	encoder, err := newEncoder(config)
	if err != nil {
		return nil, err
	}
	return NewRerankerWithEncoder(encoder)
}

// NewRerankerWithEncoder creates a reranker over an existing encoder.
// This avoids opening a second client when the caller already has one.
func NewRerankerWithEncoder(encoder semantic.Encoder) (semantic.Reranker, error) {
	if encoder == nil {
		return nil, semantic.ErrEncoderRequired
	}
	return &Reranker{
		encoder: encoder,
		logger:  slog.Default().With("component", "openai-reranker"),
	}, nil
}

// Rerank blends encoder similarity into each candidate's score and reorders
// the list by descending blended score. The output has the same length as
// the input.
func (r *Reranker) Rerank(ctx context.Context, seed string, candidates []core.Candidate, weight float32) ([]core.Candidate, error) {
	if weight < 0 || weight > 1 {
		return nil, semantic.ErrInvalidWeight
	}
	if len(candidates) == 0 {
		return []core.Candidate{}, nil
	}

	// One batched call: seed first, then every candidate word.
	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, seed)
	for _, c := range candidates {
		texts = append(texts, c.Word)
	}

	vectors, err := r.encoder.Encode(ctx, texts)
	if err != nil {
		r.logger.Error("failed to encode rerank batch", "seed", seed, "err", err)
		return nil, err
	}

	seedVector := vectors[0]
	blended := make([]core.Candidate, len(candidates))
	for i, c := range candidates {
		modelScore := core.DotProduct(seedVector, vectors[i+1])
		blended[i] = core.Candidate{
			Word:  c.Word,
			Score: (1-weight)*c.Score + weight*modelScore,
		}
	}

	sort.SliceStable(blended, func(i, j int) bool {
		return blended[i].Score > blended[j].Score
	})
	return blended, nil
}
