package expand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/mutate"
	"github.com/kestrelsec/wordlex/semantic"
)

const (
	defaultTopK         = 5
	defaultThreshold    = 0.5
	defaultMaxVariants  = 10
	defaultRerankWeight = 0.3
)

// Expander composes seed words, their semantic neighbors, and lexical
// mutations into one deduplicated, ordered wordlist. Batches of seeds fan
// out over a bounded worker pool; per-seed results are merged by a
// single-threaded reducer.
type Expander struct {
	provider semantic.SimilarityProvider
	reranker semantic.Reranker
	engine   *mutate.Engine

	topK            int
	threshold       float32
	maxVariants     int
	caseSensitive   bool
	mutateEnabled   bool
	workers         int
	rerankWeight    float32
	continueOnError bool

	logger *slog.Logger
}

// Option configures an Expander.
type Option func(*Expander) error

// WithReranker blends a second model's similarity signal into candidate
// scores before mutation. Default is no reranking.
func WithReranker(reranker semantic.Reranker) Option {
	return func(e *Expander) error {
		e.reranker = reranker
		return nil
	}
}

// WithTopK sets how many semantic neighbors are requested per seed.
// Default is 5.
func WithTopK(topK int) Option {
	return func(e *Expander) error {
		if topK < 1 {
			return fmt.Errorf("top-k must be at least 1, got %d", topK)
		}
		e.topK = topK
		return nil
	}
}

// WithSimilarityThreshold sets the minimum similarity score for semantic
// neighbors. Default is 0.5.
func WithSimilarityThreshold(threshold float32) Option {
	return func(e *Expander) error {
		e.threshold = threshold
		return nil
	}
}

// WithMaxVariants caps the number of mutation variants per base word.
// Default is 10.
func WithMaxVariants(n int) Option {
	return func(e *Expander) error {
		if n < 1 {
			return fmt.Errorf("max variants must be at least 1, got %d", n)
		}
		e.maxVariants = n
		return nil
	}
}

// WithCaseSensitive controls the deduplication and sort key of the final
// list. Default is case-insensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(e *Expander) error {
		e.caseSensitive = caseSensitive
		return nil
	}
}

// WithMutation enables lexical mutation of every base word.
// Default is off: the result is just seeds plus semantic neighbors.
func WithMutation(enabled bool) Option {
	return func(e *Expander) error {
		e.mutateEnabled = enabled
		return nil
	}
}

// WithWorkers sets the worker pool size for batch expansion.
// Default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Expander) error {
		if n < 1 {
			return ErrInvalidWorkers
		}
		e.workers = n
		return nil
	}
}

// WithRerankWeight sets the rerank blend weight in [0,1]. Default is 0.3.
func WithRerankWeight(weight float32) Option {
	return func(e *Expander) error {
		if weight < 0 || weight > 1 {
			return semantic.ErrInvalidWeight
		}
		e.rerankWeight = weight
		return nil
	}
}

// WithContinueOnError makes batch expansion skip seeds whose collaborator
// calls fail instead of aborting the whole run. Skipped seeds are still
// reported; see ExpandAll.
func WithContinueOnError(enabled bool) Option {
	return func(e *Expander) error {
		e.continueOnError = enabled
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExpander creates an expander over the given similarity provider.
// A missing provider is a configuration error surfaced here, before any
// seed is processed.
func NewExpander(provider semantic.SimilarityProvider, opts ...Option) (*Expander, error) {
	if provider == nil {
		return nil, ErrSimilarityProviderRequired
	}

	engine, err := mutate.NewEngine()
	if err != nil {
		return nil, err
	}

	e := &Expander{
		provider:     provider,
		engine:       engine,
		topK:         defaultTopK,
		threshold:    defaultThreshold,
		maxVariants:  defaultMaxVariants,
		workers:      runtime.NumCPU(),
		rerankWeight: defaultRerankWeight,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Expand expands a single seed word into a deduplicated, ordered list of
// the seed, its semantic neighbors, and (when mutation is enabled) their
// lexical variants.
func (e *Expander) Expand(ctx context.Context, seed string) ([]string, error) {
	candidates, err := e.provider.Similar(ctx, seed, e.topK, e.threshold)
	if err != nil {
		return nil, &SeedError{Seed: seed, Stage: StageSimilarity, Err: err}
	}
	e.logger.Debug("semantic candidates", "seed", seed, "count", len(candidates))

	words, err := e.expandSeed(ctx, seed, candidates)
	if err != nil {
		return nil, err
	}
	return canonicalize(words, e.caseSensitive), nil
}

// ExpandAll expands a batch of seeds and merges the per-seed results into
// one deduplicated, ordered list. Candidates come from a single batched
// similarity query; the per-seed rerank/mutate pipelines run concurrently
// on the worker pool.
//
// By default the first seed failure aborts the run. With
// WithContinueOnError the failed seeds are skipped and ExpandAll returns
// the merged results of the others together with the joined *SeedError
// values, so callers see exactly which seeds were dropped.
func (e *Expander) ExpandAll(ctx context.Context, seeds []string) ([]string, error) {
	switch len(seeds) {
	case 0:
		return []string{}, nil
	case 1:
		return e.Expand(ctx, seeds[0])
	}

	batch, err := e.provider.SimilarBatch(ctx, seeds, e.topK, e.threshold)
	if err != nil {
		return nil, fmt.Errorf("batch similarity lookup: %w", err)
	}

	pool, err := ants.NewPool(e.workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	e.logger.Debug("expanding seeds", "seeds", len(seeds), "workers", e.workers)

	type seedResult struct {
		words map[string]int
		err   error
	}
	results := make(chan seedResult, len(seeds))
	var wg sync.WaitGroup

	for _, seed := range seeds {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			words, err := e.expandSeed(ctx, seed, batch[seed])
			results <- seedResult{words: words, err: err}
		})
		if submitErr != nil {
			wg.Done()
			results <- seedResult{err: &SeedError{Seed: seed, Stage: StageSimilarity, Err: submitErr}}
		}
	}
	wg.Wait()
	close(results)

	// Single-threaded reducer: union keeping the best rank per word is
	// commutative and associative, so completion order does not matter.
	merged := make(map[string]int)
	var failures []error
	for res := range results {
		if res.err != nil {
			if !e.continueOnError {
				return nil, res.err
			}
			e.logger.Warn("skipping failed seed", "err", res.err)
			failures = append(failures, res.err)
			continue
		}
		for w, rank := range res.words {
			if prev, ok := merged[w]; !ok || rank < prev {
				merged[w] = rank
			}
		}
	}

	return canonicalize(merged, e.caseSensitive), errors.Join(failures...)
}

// expandSeed runs the rerank and mutation stages for one seed, returning
// its local result set with encounter ranks. No shared state is touched;
// the caller merges.
func (e *Expander) expandSeed(ctx context.Context, seed string, candidates []core.Candidate) (map[string]int, error) {
	if e.reranker != nil && len(candidates) > 0 {
		reranked, err := e.reranker.Rerank(ctx, seed, candidates, e.rerankWeight)
		if err != nil {
			return nil, &SeedError{Seed: seed, Stage: StageRerank, Err: err}
		}
		candidates = reranked
	}

	baseWords := append([]string{seed}, core.Words(candidates)...)

	result := make(map[string]int, len(baseWords))
	for _, base := range baseWords {
		result[base] = rankBase
	}
	if e.mutateEnabled {
		for _, base := range baseWords {
			for _, variant := range e.engine.Mutate(base, e.maxVariants) {
				if _, ok := result[variant]; !ok {
					result[variant] = rankVariant
				}
			}
		}
	}
	return result, nil
}
