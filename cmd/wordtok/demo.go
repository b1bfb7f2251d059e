package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wordtok/wordtok/config"
	"github.com/wordtok/wordtok/token"
)

// runDemo walks through the configured sample sentences and prints the
// tokenize/detokenize round trip for each.
func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	logger := initLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting demo",
		zap.Int("samples", len(cfg.Demo.Samples)),
		zap.Bool("show_breakdown", cfg.Demo.ShowBreakdown),
		zap.Bool("show_stats", cfg.Demo.ShowStats))

	for i, sample := range cfg.Demo.Samples {
		fmt.Print(describeSample(i+1, sample, cfg.Demo))
	}
}

// describeSample renders the full walkthrough for one sentence.
func describeSample(index int, sample string, opts config.DemoConfig) string {
	tokens := token.Tokenize(sample)
	reconstructed := token.Detokenize(tokens)

	var b strings.Builder
	fmt.Fprintf(&b, "=== Example %d ===\n", index)
	fmt.Fprintf(&b, "Original:      %q\n", sample)
	fmt.Fprintf(&b, "Tokens:        %q\n", tokens)
	fmt.Fprintf(&b, "Reconstructed: %q\n", reconstructed)
	fmt.Fprintf(&b, "Match:         %t\n", reconstructed == sample)

	if opts.ShowBreakdown {
		b.WriteString("Breakdown:\n")
		for i, tok := range tokens {
			fmt.Fprintf(&b, "  [%d] %s (%s)\n", i, tok, tokenKind(tok))
		}
	}

	if opts.ShowStats {
		stats := token.Analyze(tokens)
		fmt.Fprintf(&b, "Stats:         total=%d words=%d punctuation=%d avg_len=%.2f\n",
			stats.Total, stats.Words, stats.Punctuation, stats.AvgLen)
	}

	b.WriteByte('\n')
	return b.String()
}

// tokenKind labels a token for display, using the same classification as
// token.Analyze.
func tokenKind(tok string) string {
	if token.IsWord(tok) {
		return "WORD"
	}
	return "PUNCTUATION"
}
