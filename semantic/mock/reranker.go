package mock

import (
	"context"
	"hash/fnv"
	"sort"
	"sync/atomic"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/semantic"
)

// MockReranker is a test double for semantic.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RerankFunc is called by Rerank if set.
	// If nil, uses default deterministic blending.
	RerankFunc func(ctx context.Context, seed string, candidates []core.Candidate, weight float32) ([]core.Candidate, error)

	// Batch expansion calls Rerank from multiple workers, so the counter
	// must be atomic to honor the thread-safety contract.
	callCount atomic.Int64
}

// NewMockReranker creates a mock reranker with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank blends a deterministic pseudo-score derived from each candidate
// word's hash, then sorts by descending blended score. The output always
// has the same length as the input.
func (m *MockReranker) Rerank(ctx context.Context, seed string, candidates []core.Candidate, weight float32) ([]core.Candidate, error) {
	m.callCount.Add(1)

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, seed, candidates, weight)
	}

	if weight < 0 || weight > 1 {
		return nil, semantic.ErrInvalidWeight
	}

	blended := make([]core.Candidate, len(candidates))
	for i, c := range candidates {
		blended[i] = core.Candidate{
			Word:  c.Word,
			Score: (1-weight)*c.Score + weight*deterministicScore(c.Word),
		}
	}
	sort.SliceStable(blended, func(i, j int) bool {
		return blended[i].Score > blended[j].Score
	})
	return blended, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockReranker) Reset() {
	m.callCount.Store(0)
	m.RerankFunc = nil
}

// deterministicScore maps a word to a stable pseudo-similarity in [0,1).
func deterministicScore(word string) float32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return float32(h.Sum32()%1000) / 1000.0
}
