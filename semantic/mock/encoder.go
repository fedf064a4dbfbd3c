package mock

import (
	"context"
	"hash/fnv"
	"sync/atomic"

	"github.com/kestrelsec/wordlex/core"
)

// MockEncoder is a test double for semantic.Encoder.
// It allows custom behavior injection via function fields.
type MockEncoder struct {
	// EncodeFunc is called by Encode if set.
	// If nil, uses default deterministic behavior.
	EncodeFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Encoders must be safe for concurrent use, so the counter is atomic.
	callCount atomic.Int64
}

// NewMockEncoder creates a mock encoder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

// Encode generates deterministic embeddings based on each text's hash.
func (m *MockEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount.Add(1)

	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = generateDeterministicVector(text, 384)
	}
	return vectors, nil
}

// CallCount returns the number of times Encode was called.
func (m *MockEncoder) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and injected behavior.
func (m *MockEncoder) Reset() {
	m.callCount.Store(0)
	m.EncodeFunc = nil
}

// generateDeterministicVector creates a deterministic embedding vector from
// text. It uses FNV hash to ensure the same text always produces the same
// vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
	}

	return core.NormalizeVector(vector)
}
