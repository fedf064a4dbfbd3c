package openai

import (
	"context"
	"log/slog"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/semantic"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Encoder implements semantic.Encoder using OpenAI-compatible embedding APIs.
type Encoder struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// newEncoder is an internal constructor that returns the concrete type.
func newEncoder(config *semantic.Config) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		embedder: embedder,
		logger:   slog.Default().With("component", "openai-encoder"),
	}, nil
}

// NewEncoder creates an encoder using the provided configuration.
//
// Returns semantic.Encoder interface to enforce abstraction.
func NewEncoder(config *semantic.Config) (semantic.Encoder, error) {
	return newEncoder(config)
}

// Encode generates unit-normalized embeddings for the given texts.
func (e *Encoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	for i, v := range vectors {
		vectors[i] = core.NormalizeVector(v)
	}
	return vectors, nil
}
