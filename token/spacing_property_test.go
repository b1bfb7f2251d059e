package token

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_JoinerSpacingInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	wordGen := gen.RegexMatch(`[A-Za-z0-9]{1,8}`)
	tokensGen := gen.SliceOf(gen.RegexMatch(`[A-Za-z0-9]{1,6}|[.,!?;:()\[\]{}"]`))

	properties.Property("stripping spaces recovers the token concatenation", prop.ForAll(
		func(tokens []string) bool {
			out := Detokenize(tokens)
			return strings.ReplaceAll(out, " ", "") == strings.Join(tokens, "")
		},
		tokensGen,
	))

	properties.Property("at most one separator per adjacent token pair", prop.ForAll(
		func(tokens []string) bool {
			out := Detokenize(tokens)
			total := 0
			for _, tok := range tokens {
				total += len(tok)
			}
			spaces := len(out) - total
			if len(tokens) == 0 {
				return spaces == 0
			}
			return spaces >= 0 && spaces <= len(tokens)-1
		},
		tokensGen,
	))

	properties.Property("output never starts or ends with a space", prop.ForAll(
		func(tokens []string) bool {
			out := Detokenize(tokens)
			return !strings.HasPrefix(out, " ") && !strings.HasSuffix(out, " ")
		},
		tokensGen,
	))

	properties.Property("leading-attach punctuation glues to the previous word", prop.ForAll(
		func(word string, punct rune) bool {
			return Detokenize([]string{word, string(punct)}) == word+string(punct)
		},
		wordGen,
		gen.OneConstOf('.', ',', '!', '?', ';', ':', ')', ']', '}', '"'),
	))

	properties.Property("trailing-attach punctuation glues to the next word", prop.ForAll(
		func(word string, punct rune) bool {
			return Detokenize([]string{string(punct), word}) == string(punct)+word
		},
		wordGen,
		gen.OneConstOf('(', '[', '{', '"'),
	))

	properties.Property("plain words are separated by exactly one space", prop.ForAll(
		func(a, b string) bool {
			return Detokenize([]string{a, b}) == a+" "+b
		},
		wordGen,
		wordGen,
	))

	properties.TestingRun(t)
}
