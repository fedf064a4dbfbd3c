package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/kestrelsec/wordlex/core"
)

// MockProvider is a test double for semantic.SimilarityProvider.
// It serves canned neighbor lists and allows custom behavior injection
// via function fields.
type MockProvider struct {
	// SimilarFunc is called by Similar if set.
	// If nil, answers from the Neighbors map.
	SimilarFunc func(ctx context.Context, word string, topK int, threshold float32) ([]core.Candidate, error)

	// SimilarBatchFunc is called by SimilarBatch if set.
	// If nil, answers each word via Similar.
	SimilarBatchFunc func(ctx context.Context, words []string, topK int, threshold float32) (map[string][]core.Candidate, error)

	// Neighbors maps lowercased words to their canned candidate lists,
	// ordered by descending score.
	Neighbors map[string][]core.Candidate

	// Batch expansion calls Similar from multiple workers, so the counter
	// must be atomic to honor the thread-safety contract.
	callCount atomic.Int64
}

// NewMockProvider creates a mock provider with an empty vocabulary.
// Note: Returns concrete type to allow test assertions and neighbor setup.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Neighbors: make(map[string][]core.Candidate),
	}
}

// WithNeighbors registers a canned candidate list for a word.
// Returns the provider for chaining.
func (m *MockProvider) WithNeighbors(word string, candidates ...core.Candidate) *MockProvider {
	m.Neighbors[strings.ToLower(word)] = candidates
	return m
}

// Similar answers from the canned neighbor map, applying the topK and
// threshold contract. Unknown words yield an empty slice, not an error.
func (m *MockProvider) Similar(ctx context.Context, word string, topK int, threshold float32) ([]core.Candidate, error) {
	m.callCount.Add(1)

	if m.SimilarFunc != nil {
		return m.SimilarFunc(ctx, word, topK, threshold)
	}

	canned := m.Neighbors[strings.ToLower(word)]
	results := make([]core.Candidate, 0, len(canned))
	for _, c := range canned {
		if c.Score >= threshold {
			results = append(results, c)
		}
	}
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// SimilarBatch answers each word independently via Similar.
func (m *MockProvider) SimilarBatch(ctx context.Context, words []string, topK int, threshold float32) (map[string][]core.Candidate, error) {
	m.callCount.Add(1)

	if m.SimilarBatchFunc != nil {
		return m.SimilarBatchFunc(ctx, words, topK, threshold)
	}

	results := make(map[string][]core.Candidate, len(words))
	for _, word := range words {
		candidates, err := m.Similar(ctx, word, topK, threshold)
		if err != nil {
			return nil, err
		}
		results[word] = candidates
	}
	return results, nil
}

// CallCount returns the number of times any method was called.
func (m *MockProvider) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockProvider) Reset() {
	m.callCount.Store(0)
	m.SimilarFunc = nil
	m.SimilarBatchFunc = nil
}
