package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wordtok/wordtok/token"
)

// maxConcurrentFiles bounds how many files are read and tokenized at once.
const maxConcurrentFiles = 8

type fileReport struct {
	path  string
	stats token.Stats
}

// runFiles tokenizes every named file concurrently and reports per-file
// statistics. Tokenization itself is pure, so files can be processed in
// parallel without coordination.
func runFiles(args []string) {
	fs := flag.NewFlagSet("files", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "files: at least one path is required")
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	logger := initLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	reports, err := analyzeFiles(context.Background(), paths, logger)
	if err != nil {
		logger.Error("file analysis failed", zap.Error(err))
		os.Exit(1)
	}

	var total token.Stats
	for _, r := range reports {
		fmt.Printf("%s: total=%d words=%d punctuation=%d avg_len=%.2f\n",
			r.path, r.stats.Total, r.stats.Words, r.stats.Punctuation, r.stats.AvgLen)
		total.Total += r.stats.Total
		total.Words += r.stats.Words
		total.Punctuation += r.stats.Punctuation
	}
	if len(reports) > 1 {
		fmt.Printf("all files: total=%d words=%d punctuation=%d\n",
			total.Total, total.Words, total.Punctuation)
	}
}

// analyzeFiles reads and tokenizes paths concurrently. Results keep the
// order of the input paths regardless of completion order.
func analyzeFiles(ctx context.Context, paths []string, logger *zap.Logger) ([]fileReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reports := make([]fileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			tokens := token.Tokenize(string(data))
			stats := token.Analyze(tokens)
			logger.Info("analyzed file",
				zap.String("path", path),
				zap.Int("bytes", len(data)),
				zap.Int("tokens", stats.Total),
				zap.Int("words", stats.Words),
				zap.Int("punctuation", stats.Punctuation))

			reports[i] = fileReport{path: path, stats: stats}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
