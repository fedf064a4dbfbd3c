package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"golang.org/x/sync/errgroup"

	"github.com/kestrelsec/wordlex/core"
)

// Store is a BadgerDB-backed word-vector vocabulary. It implements
// semantic.SimilarityProvider: nearest neighbors are found by a cosine scan
// over the stored unit-normalized vectors.
type Store struct {
	db      *badger.DB
	logger  *slog.Logger
	lookups int
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// StoreOption configures a Store.
type StoreOption func(*Store) error

// WithLookupParallelism bounds how many per-word lookups a batch query runs
// concurrently. Default is runtime.NumCPU().
func WithLookupParallelism(n int) StoreOption {
	return func(s *Store) error {
		if n < 1 {
			n = 1
		}
		s.lookups = n
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// OpenStore opens a vocabulary store at the specified path.
// Creates the directory if it doesn't exist.
func OpenStore(filePath string, inMemory bool, opts ...StoreOption) (*Store, error) {
	var dbOpts badger.Options

	if inMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		dbOpts = badger.DefaultOptions(filePath)
	}

	dbOpts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	dbOpts.Compression = options.None

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	s := &Store{
		db:      db,
		logger:  slog.Default(),
		lookups: runtime.NumCPU(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts or replaces vocabulary entries. Vectors are unit-normalized
// before storage so lookups can use a plain dot product.
func (s *Store) Add(ctx context.Context, entries ...*core.WordVector) error {
	return s.db.Update(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := core.ValidateWordVector(entry); err != nil {
				return err
			}
			normalized := &core.WordVector{
				Word:   entry.Word,
				Vector: core.NormalizeVector(entry.Vector),
			}
			key := makeWordVectorKey(core.IDFromWord(entry.Word))
			if err := tx.Set(key, MarshalWordVector(normalized)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get retrieves a vocabulary entry by word. The lookup key is
// case-insensitive. Returns (nil, nil) when the word is not in the
// vocabulary.
func (s *Store) Get(ctx context.Context, word string) (*core.WordVector, error) {
	var entry *core.WordVector
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeWordVectorKey(core.IDFromWord(word)))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = UnmarshalWordVector(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Count returns the number of vocabulary entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(wordVectorPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Similar returns up to topK vocabulary words nearest to word, ordered by
// descending cosine similarity, with all scores >= threshold. The query
// word itself is never part of the result. A word missing from the
// vocabulary yields an empty slice, not an error.
func (s *Store) Similar(ctx context.Context, word string, topK int, threshold float32) ([]core.Candidate, error) {
	query, err := s.Get(ctx, word)
	if err != nil {
		return nil, err
	}
	if query == nil {
		s.logger.Debug("word not in vocabulary", "word", word)
		return []core.Candidate{}, nil
	}

	lowerWord := strings.ToLower(word)
	var results []core.Candidate

	err = s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(wordVectorPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.WordVector
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = UnmarshalWordVector(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry == nil || strings.ToLower(entry.Word) == lowerWord {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			score := core.DotProduct(query.Vector, entry.Vector)
			if score >= threshold {
				results = append(results, core.Candidate{Word: entry.Word, Score: score})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(results, func(a, b core.Candidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(results) > topK {
		results = results[:topK]
	}
	if results == nil {
		results = []core.Candidate{}
	}
	return results, nil
}

// SimilarBatch answers one lookup per word with bounded internal
// parallelism. The returned map has one entry per distinct input word.
func (s *Store) SimilarBatch(ctx context.Context, words []string, topK int, threshold float32) (map[string][]core.Candidate, error) {
	s.logger.Debug("batch vocabulary lookup", "words", len(words), "parallelism", s.lookups)

	results := make(map[string][]core.Candidate, len(words))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookups)

	for _, word := range words {
		g.Go(func() error {
			candidates, err := s.Similar(gctx, word, topK, threshold)
			if err != nil {
				return fmt.Errorf("lookup %q: %w", word, err)
			}
			mu.Lock()
			results[word] = candidates
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
