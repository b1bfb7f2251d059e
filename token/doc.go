// Package token splits natural-language text into word and punctuation
// tokens and reconstructs text from a token sequence using fixed
// punctuation-adjacency spacing rules. Every operation is a pure function
// of its input, so the package is safe for concurrent use without locking.
package token
