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


package wordlex

import (
	"log/slog"

	"github.com/kestrelsec/wordlex/expand"
	"github.com/kestrelsec/wordlex/semantic"
	"github.com/kestrelsec/wordlex/semantic/openai"
	"github.com/kestrelsec/wordlex/vocab"
)

// Generator is the root handle over a vocabulary store. It wires the store,
// the embedding services, and the expansion pipeline together.
type Generator struct {
	store  *vocab.Store
	config *semantic.Config
	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	semanticConfig *semantic.Config
	inMemory       bool
	storeOpts      []vocab.StoreOption
}

// WithSemanticConfig sets the embedding service configuration used by
// NewEncoder and NewReranker.
func WithSemanticConfig(config *semantic.Config) GeneratorOption {
	return func(o *generatorOptions) {
		o.semanticConfig = config
	}
}

// WithInMemory opens the vocabulary store in memory, ignoring the path.
// Nothing is persisted; intended for tests and one-shot runs.
func WithInMemory() GeneratorOption {
	return func(o *generatorOptions) {
		o.inMemory = true
	}
}

// WithStoreOptions forwards options to the underlying vocabulary store.
func WithStoreOptions(opts ...vocab.StoreOption) GeneratorOption {
	return func(o *generatorOptions) {
		o.storeOpts = append(o.storeOpts, opts...)
	}
}

// NewGenerator opens the vocabulary store at filePath and returns a handle
// for building importers and expanders over it.
func NewGenerator(filePath string, opts ...GeneratorOption) (*Generator, error) {
	// Apply options
	options := &generatorOptions{
		semanticConfig: semantic.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := vocab.OpenStore(filePath, options.inMemory, options.storeOpts...)
	if err != nil {
		return nil, err
	}

	return &Generator{
		store:  store,
		config: options.semanticConfig,
		logger: slog.Default(),
	}, nil
}

func (g *Generator) Close() error {
	if err := g.store.Close(); err != nil {
		g.logger.Error("error closing vocabulary store", "err", err)
		return err
	}
	return nil
}

// Store exposes the vocabulary store directly.
func (g *Generator) Store() *vocab.Store {
	return g.store
}

// NewExpander builds an expander over the vocabulary store. The store is
// the similarity provider; reranking and mutation are enabled through the
// expand options.
func (g *Generator) NewExpander(opts ...expand.Option) (*expand.Expander, error) {
	return expand.NewExpander(g.store, opts...)
}

// NewImporter builds an importer for seeding the vocabulary store.
func (g *Generator) NewImporter(opts ...vocab.ImporterOption) (*vocab.Importer, error) {
	return vocab.NewImporter(g.store, opts...)
}

// NewEncoder builds a sentence encoder from the configured embedding
// service.
func (g *Generator) NewEncoder() (semantic.Encoder, error) {
	return openai.NewEncoder(g.config)
}

// NewReranker builds a reranker from the configured embedding service.
func (g *Generator) NewReranker() (semantic.Reranker, error) {
	return openai.NewReranker(g.config)
}
