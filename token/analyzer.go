package token

import "unicode/utf8"

// Stats summarizes a token sequence.
type Stats struct {
	// Total is the number of tokens in the sequence.
	Total int `json:"total"`
	// Words is the number of tokens containing at least one letter or digit.
	Words int `json:"words"`
	// Punctuation is Total minus Words.
	Punctuation int `json:"punctuation"`
	// AvgLen is the mean token length in runes, 0 for an empty sequence.
	AvgLen float64 `json:"avg_len"`
}

// Analyze computes aggregate statistics over tokens. Word classification
// uses the same alphanumeric predicate as IsWord, so Analyze and any
// display-level filtering built on IsWord always agree.
func Analyze(tokens []string) Stats {
	s := Stats{Total: len(tokens)}

	runes := 0
	for _, tok := range tokens {
		if IsWord(tok) {
			s.Words++
		}
		runes += utf8.RuneCountInString(tok)
	}
	s.Punctuation = s.Total - s.Words

	if s.Total > 0 {
		s.AvgLen = float64(runes) / float64(s.Total)
	}
	return s
}
