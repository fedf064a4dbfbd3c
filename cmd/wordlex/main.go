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


package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kestrelsec/wordlex"
	"github.com/kestrelsec/wordlex/expand"
	"github.com/kestrelsec/wordlex/filter"
	"github.com/kestrelsec/wordlex/semantic"
	"github.com/kestrelsec/wordlex/vocab"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wordlex",
		Usage: "Expand seed words into candidate wordlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "expand",
				Usage:     "Expand seed words or files of seed words into a wordlist",
				ArgsUsage: "[words|files...]",
				Action:    expandCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to vocabulary store directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of semantic neighbors per seed",
						Value:   5,
					},
					&cli.Float64Flag{
						Name:    "similarity-threshold",
						Aliases: []string{"s"},
						Usage:   "Minimum similarity score for semantic neighbors",
						Value:   0.5,
					},
					&cli.IntFlag{
						Name:    "num-words",
						Aliases: []string{"n"},
						Usage:   "Maximum mutation variants per base word",
						Value:   50,
					},
					&cli.BoolFlag{
						Name:    "mutate",
						Aliases: []string{"m"},
						Usage:   "Generate lexical mutations of every base word",
					},
					&cli.BoolFlag{
						Name:    "case-sensitive",
						Aliases: []string{"c"},
						Usage:   "Deduplicate and sort case-sensitively",
					},
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Filter specification, e.g. 'length>4,starts-with=pa'",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the wordlist to a file instead of stdout",
					},
					&cli.BoolFlag{
						Name:    "rerank",
						Aliases: []string{"r"},
						Usage:   "Rerank semantic neighbors with the embedding service",
					},
					&cli.Float64Flag{
						Name:  "rerank-weight",
						Usage: "Blend weight of the rerank score in [0,1]",
						Value: 0.3,
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Worker pool size for batch expansion (0 = number of CPUs)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (rerank only)",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (rerank only)",
						Value: "embeddinggemma",
					},
					&cli.BoolFlag{
						Name:  "continue-on-error",
						Usage: "Skip seeds whose expansion fails instead of aborting",
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Seed the vocabulary store from a vector file or word list",
				ArgsUsage: "[vectors.txt|words.txt]",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to vocabulary store directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "embed",
						Aliases: []string{"e"},
						Usage:   "Treat the input as plain words and embed them via the embedding service",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to write per batch",
						Value: 64,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
				},
			},
		},
	}
}

func expandCommand(c *cli.Context) error {
	ctx := context.Background()

	// Parse the filter up front so a bad spec fails before any work
	predicates, err := filter.Parse(c.String("filter"))
	if err != nil {
		return err
	}

	seeds, err := collectSeeds(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return writeWords(nil, c.String("output"))
	}

	gen, err := wordlex.NewGenerator(c.String("db"), wordlex.WithSemanticConfig(
		semantic.NewConfig(
			semantic.WithEmbeddingHost(c.String("embedding-host")),
			semantic.WithEmbeddingModel(c.String("embedding-model")),
		),
	))
	if err != nil {
		return fmt.Errorf("failed to open vocabulary store: %w", err)
	}
	defer gen.Close()

	opts := []expand.Option{
		expand.WithTopK(c.Int("top-k")),
		expand.WithSimilarityThreshold(float32(c.Float64("similarity-threshold"))),
		expand.WithMaxVariants(c.Int("num-words")),
		expand.WithMutation(c.Bool("mutate")),
		expand.WithCaseSensitive(c.Bool("case-sensitive")),
		expand.WithContinueOnError(c.Bool("continue-on-error")),
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, expand.WithWorkers(workers))
	}
	if c.Bool("rerank") {
		reranker, err := gen.NewReranker()
		if err != nil {
			return fmt.Errorf("failed to create reranker: %w", err)
		}
		opts = append(opts,
			expand.WithReranker(reranker),
			expand.WithRerankWeight(float32(c.Float64("rerank-weight"))),
		)
	}

	expander, err := gen.NewExpander(opts...)
	if err != nil {
		return err
	}

	words, err := expander.ExpandAll(ctx, seeds)
	if err != nil {
		if !c.Bool("continue-on-error") {
			return err
		}
		// Partial results were requested; report the skipped seeds and move on.
		slog.Warn("some seeds failed to expand", "err", err)
	}

	return writeWords(filter.Apply(words, predicates), c.String("output"))
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	input, err := openInput(c.Args().First())
	if err != nil {
		return err
	}
	defer input.Close()

	gen, err := wordlex.NewGenerator(c.String("db"), wordlex.WithSemanticConfig(
		semantic.NewConfig(
			semantic.WithEmbeddingHost(c.String("embedding-host")),
			semantic.WithEmbeddingModel(c.String("embedding-model")),
		),
	))
	if err != nil {
		return fmt.Errorf("failed to open vocabulary store: %w", err)
	}
	defer gen.Close()

	importerOpts := []vocab.ImporterOption{
		vocab.WithBatchSize(c.Int("batch-size")),
	}
	if c.Bool("embed") {
		encoder, err := gen.NewEncoder()
		if err != nil {
			return fmt.Errorf("failed to create encoder: %w", err)
		}
		importerOpts = append(importerOpts, vocab.WithEncoder(encoder))
	}

	importer, err := gen.NewImporter(importerOpts...)
	if err != nil {
		return err
	}

	var imported int
	if c.Bool("embed") {
		words, err := readWords(input)
		if err != nil {
			return err
		}
		imported, err = importer.ImportWords(ctx, words)
		if err != nil {
			return fmt.Errorf("word import failed: %w", err)
		}
	} else {
		imported, err = importer.ImportVectorFile(ctx, input)
		if err != nil {
			return fmt.Errorf("vector import failed: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Imported %d vocabulary entries\n", imported)
	return nil
}

// collectSeeds turns positional arguments into seed words. An argument that
// names an existing regular file contributes every word in the file;
// anything else is taken as a literal seed. With no arguments, seeds are
// read from stdin when it is piped.
func collectSeeds(args []string) ([]string, error) {
	if len(args) == 0 {
		if !stdinPiped() {
			return nil, nil
		}
		return readWords(os.Stdin)
	}

	var seeds []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || info.IsDir() {
			seeds = append(seeds, arg)
			continue
		}

		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", arg, err)
		}
		words, err := readWords(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", arg, err)
		}
		seeds = append(seeds, words...)
	}
	return seeds, nil
}

// readWords reads whitespace-separated words, one or more per line, skipping
// blank lines.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// openInput opens the named file, or falls back to stdin when no name is
// given.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", name, err)
	}
	return f, nil
}

// writeWords emits the wordlist one word per line, to stdout or to the
// named file. Empty lists produce no output.
func writeWords(words []string, output string) error {
	if len(words) == 0 {
		return nil
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(strings.Join(words, "\n") + "\n"); err != nil {
		return err
	}
	return w.Flush()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
