package token

import (
	"strings"
	"unicode/utf8"
)

// Spacing rule sets. A token starting with a noSpaceBefore rune attaches
// to the preceding text; a token ending with a noSpaceAfter rune pulls the
// next token onto itself. The double quote is in both sets on purpose:
// the token stream carries no open/close distinction for quotes, so the
// rules treat it the same in either direction, spacing oddities included.
const (
	noSpaceBefore = `.,!?;:)]}"`
	noSpaceAfter  = `([{"`
)

// Detokenize reconstructs a single string from tokens, inserting a space
// between adjacent tokens unless one of the attachment rules suppresses
// it. Whitespace discarded by Tokenize is not recoverable, so the result
// approximates the source with every whitespace run collapsed to one
// space.
//
// Only the first rune of the current token and the last rune of the
// previous one are inspected, so caller-built sequences with multi-rune
// punctuation tokens are handled without error. An empty sequence yields
// the empty string; empty-string tokens never suppress spacing.
func Detokenize(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(tokens[0])
	for i := 1; i < len(tokens); i++ {
		spaceBefore := !strings.ContainsRune(noSpaceBefore, firstRune(tokens[i]))
		spaceAfter := !strings.ContainsRune(noSpaceAfter, lastRune(tokens[i-1]))
		if spaceBefore && spaceAfter {
			b.WriteByte(' ')
		}
		b.WriteString(tokens[i])
	}
	return b.String()
}

// firstRune returns the first rune of s, or a space for the empty string
// so that nothing matches the attachment sets.
func firstRune(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	if s == "" {
		return ' '
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
