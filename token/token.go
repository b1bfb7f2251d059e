package token

import "unicode"

// isWordRune reports whether r may appear inside a word token.
// Apostrophes and hyphens are included so contractions ("don't") and
// compounds ("mother-in-law") stay single tokens. The rule ignores
// position: a leading or trailing apostrophe/hyphen is absorbed too.
func isWordRune(r rune) bool {
	return isAlphanumeric(r) || r == '\'' || r == '-'
}

// isAlphanumeric is the single character-class predicate behind both the
// scanner's split decisions and the word/punctuation classification used
// by Analyze and IsWord. Full Unicode, not ASCII-only.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWord reports whether tok is a word token: it contains at least one
// letter or digit anywhere in it. Everything else — including multi-rune
// tokens supplied by callers and the empty string — counts as punctuation.
func IsWord(tok string) bool {
	for _, r := range tok {
		if isAlphanumeric(r) {
			return true
		}
	}
	return false
}
