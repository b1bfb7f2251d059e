package token

import "strings"

// Tokenize splits text into an ordered sequence of word and punctuation
// tokens. Runs of whitespace separate chunks and are discarded entirely;
// within a chunk, letters, digits, apostrophes and hyphens accumulate into
// word tokens while every other rune becomes its own single-rune token.
//
// Tokenize is total: any input, including the empty string and non-ASCII
// text, yields a well-defined (possibly empty) sequence. The result
// depends only on the whitespace-normalized form of text.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	for _, chunk := range strings.Fields(text) {
		for _, r := range chunk {
			if isWordRune(r) {
				word.WriteRune(r)
				continue
			}
			// Punctuation: flush the pending word first, then emit the
			// rune as a token of its own.
			if word.Len() > 0 {
				tokens = append(tokens, word.String())
				word.Reset()
			}
			tokens = append(tokens, string(r))
		}
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	return tokens
}
