// Package wordtok provides a top-level convenience entry point for the
// rule-based word/punctuation tokenizer.
//
// Usage:
//
//	import "github.com/wordtok/wordtok"
//
//	tokens := wordtok.Tokenize("Hello, world!")
//	text := wordtok.Detokenize(tokens)
//	stats := wordtok.Analyze(tokens)
//
// This is a thin wrapper around the token package; both produce identical
// results. Use this package when you prefer the shorter import path.
package wordtok

import "github.com/wordtok/wordtok/token"

// Stats summarizes a token sequence. See [token.Stats].
type Stats = token.Stats

// Tokenize splits text into word and punctuation tokens.
// See [token.Tokenize].
func Tokenize(text string) []string { return token.Tokenize(text) }

// Detokenize reconstructs text from a token sequence using the
// punctuation-adjacency spacing rules. See [token.Detokenize].
func Detokenize(tokens []string) string { return token.Detokenize(tokens) }

// Analyze returns aggregate statistics for a token sequence.
// See [token.Analyze].
func Analyze(tokens []string) Stats { return token.Analyze(tokens) }

// IsWord reports whether a token contains at least one letter or digit.
var IsWord = token.IsWord
