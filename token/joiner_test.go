package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetokenize(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{
			name:     "empty sequence",
			tokens:   nil,
			expected: "",
		},
		{
			name:     "single token",
			tokens:   []string{"hello"},
			expected: "hello",
		},
		{
			name:     "plain words get single spaces",
			tokens:   []string{"one", "two", "three"},
			expected: "one two three",
		},
		{
			name:     "comma and bang attach left",
			tokens:   []string{"Hello", ",", "world", "!"},
			expected: "Hello, world!",
		},
		{
			name:     "brackets suppress on both sides",
			tokens:   []string{"(", "Not", "really", ")"},
			expected: "(Not really)",
		},
		{
			name:     "square and curly brackets",
			tokens:   []string{"a", "[", "b", "]", "{", "c", "}"},
			expected: "a [b] {c}",
		},
		{
			name:     "repeated punctuation stays glued",
			tokens:   []string{"Absolutely", "!", "!", "!"},
			expected: "Absolutely!!!",
		},
		{
			name:     "colon and semicolon attach left",
			tokens:   []string{"note", ":", "first", ";", "second"},
			expected: "note: first; second",
		},
		{
			name: "quote attaches in both directions",
			// The stream has no open/close info for quotes, so the space
			// before the opening quote is suppressed too.
			tokens:   []string{"Mr", ".", "Smith", "said", ",", `"`, "Don't", "worry", "!", `"`},
			expected: `Mr. Smith said,"Don't worry!"`,
		},
		{
			name:     "word after closing quote gets no space",
			tokens:   []string{`"`, "hi", `"`, "she", "said"},
			expected: `"hi"she said`,
		},
		{
			name:     "multi-rune punctuation token inspected by edge runes",
			tokens:   []string{"wait", "?!", "really"},
			expected: "wait?! really",
		},
		{
			name:     "multi-rune opener token",
			tokens:   []string{"see", "([", "ref", "])"},
			expected: "see ([ref])",
		},
		{
			name:     "empty-string tokens never suppress spacing",
			tokens:   []string{"a", "", "b"},
			expected: "a  b",
		},
		{
			name:     "hyphen token is an ordinary word",
			tokens:   []string{"a", "-", "b"},
			expected: "a - b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detokenize(tt.tokens)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetokenize_Deterministic(t *testing.T) {
	tokens := []string{"(", "a", ",", "b", ")", "!", `"`, "c"}
	first := Detokenize(tokens)
	assert.Equal(t, first, Detokenize(tokens))
}

func TestRoundTrip(t *testing.T) {
	// Single-spaced text using only recognized punctuation reconstructs
	// byte-exactly; whitespace runs and free-standing quotes do not.
	exact := []string{
		"Hello, world! How are you?",
		"Really? Yes! Absolutely!!!",
		"This sentence is plain.",
		"awesome, isn't it? (Not really)",
		"one [two] {three}: four; five",
	}
	for _, text := range exact {
		assert.Equal(t, text, Detokenize(Tokenize(text)), "round-trip of %q", text)
	}

	lossy := map[string]string{
		"This  has   multiple    spaces.": "This has multiple spaces.",
		"\ttabbed\nand newlined":          "tabbed and newlined",
		`Mr. Smith said, "Don't worry!"`:  `Mr. Smith said,"Don't worry!"`,
	}
	for text, expected := range lossy {
		assert.Equal(t, expected, Detokenize(Tokenize(text)), "collapsed round-trip of %q", text)
	}
}
