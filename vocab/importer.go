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


package vocab

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kestrelsec/wordlex/core"
	"github.com/kestrelsec/wordlex/semantic"
)

const defaultImportBatchSize = 64

// Importer bulk-loads vocabulary entries into a Store, either from a text
// vector file or by embedding plain words through an Encoder.
type Importer struct {
	store     *Store
	encoder   semantic.Encoder
	batchSize int
	logger    *slog.Logger
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer) error

// WithEncoder sets the encoder used by ImportWords.
// Without one, only vector-file imports are available.
func WithEncoder(encoder semantic.Encoder) ImporterOption {
	return func(imp *Importer) error {
		imp.encoder = encoder
		return nil
	}
}

// WithBatchSize sets how many entries are written (and, for word imports,
// embedded) per batch. Default is 64.
func WithBatchSize(size int) ImporterOption {
	return func(imp *Importer) error {
		if size < 1 {
			size = 1
		}
		imp.batchSize = size
		return nil
	}
}

// NewImporter creates an importer for the given store.
func NewImporter(store *Store, opts ...ImporterOption) (*Importer, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	imp := &Importer{
		store:     store,
		batchSize: defaultImportBatchSize,
		logger:    slog.Default().With("component", "vocab-importer"),
	}
	for _, opt := range opts {
		if err := opt(imp); err != nil {
			return nil, err
		}
	}
	return imp, nil
}

// ImportVectorFile loads entries from a word2vec-style text stream: one
// entry per line, the word followed by its vector components, all
// space-separated. An optional "count dimension" header line is skipped.
// Returns the number of imported entries.
func (imp *Importer) ImportVectorFile(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	imported := 0
	lineNo := 0
	batch := make([]*core.WordVector, 0, imp.batchSize)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		// word2vec text files open with a "count dim" header
		if lineNo == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				continue
			}
		}
		if len(fields) < 2 {
			return imported, fmt.Errorf("line %d: %w", lineNo, ErrMalformedEntry)
		}

		vector := make([]float32, len(fields)-1)
		for i, f := range fields[1:] {
			val, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return imported, fmt.Errorf("line %d: %w: %w", lineNo, ErrMalformedEntry, err)
			}
			vector[i] = float32(val)
		}

		batch = append(batch, &core.WordVector{Word: fields[0], Vector: vector})
		if len(batch) >= imp.batchSize {
			if err := imp.store.Add(ctx, batch...); err != nil {
				return imported, err
			}
			imported += len(batch)
			batch = batch[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return imported, err
	}

	if len(batch) > 0 {
		if err := imp.store.Add(ctx, batch...); err != nil {
			return imported, err
		}
		imported += len(batch)
	}

	imp.logger.Info("vector file import complete", "entries", imported)
	return imported, nil
}

// ImportWords embeds plain words through the configured encoder and stores
// the resulting vectors. Returns the number of imported entries.
func (imp *Importer) ImportWords(ctx context.Context, words []string) (int, error) {
	if imp.encoder == nil {
		return 0, semantic.ErrEncoderRequired
	}

	imported := 0
	for start := 0; start < len(words); start += imp.batchSize {
		end := start + imp.batchSize
		if end > len(words) {
			end = len(words)
		}
		chunk := words[start:end]

		vectors, err := imp.encoder.Encode(ctx, chunk)
		if err != nil {
			return imported, fmt.Errorf("embedding words %d-%d: %w", start, end-1, err)
		}
		if len(vectors) != len(chunk) {
			return imported, fmt.Errorf("embedding words %d-%d: %w", start, end-1, ErrMalformedEntry)
		}

		entries := make([]*core.WordVector, len(chunk))
		for i, word := range chunk {
			entries[i] = &core.WordVector{Word: word, Vector: vectors[i]}
		}
		if err := imp.store.Add(ctx, entries...); err != nil {
			return imported, err
		}
		imported += len(entries)
	}

	imp.logger.Info("word import complete", "entries", imported)
	return imported, nil
}
