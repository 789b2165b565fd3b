package processor

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// amountRe matches digits with at most one decimal separator. Thousands
// separators are not recognised: "1.500" is one and a half.
var amountRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// amountTailRe matches the digits left over when an amount has more than one
// separator, like ",00" after "1.500".
var amountTailRe = regexp.MustCompile(`^(?:[.,]\d+)+`)

// word is a whitespace separated token of the message together with its matching key.
type word struct {
	raw string
	key string
}

func split(text string) []word {
	fields := strings.Fields(text)
	words := make([]word, len(fields))
	for i, f := range fields {
		words[i] = word{raw: f, key: keyOf(f)}
	}
	return words
}

// keyOf folds a token to lowercase without diacritics and drops the leading and
// trailing characters that are neither letters nor digits.
func keyOf(token string) string {
	return strings.TrimFunc(fold(token), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func fold(s string) string {
	// Transformers keep state, so each call builds its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func joinRaw(words []word) string {
	raws := make([]string, len(words))
	for i, w := range words {
		raws[i] = w.raw
	}
	return strings.Join(raws, " ")
}

// extractAmount returns the first amount in text and text with that amount cut out.
func extractAmount(text string) (decimal.Decimal, string, bool) {
	loc := amountRe.FindStringIndex(text)
	if loc == nil {
		return decimal.Zero, text, false
	}
	value, err := decimal.NewFromString(strings.Replace(text[loc[0]:loc[1]], ",", ".", 1))
	if err != nil {
		return decimal.Zero, text, false
	}
	tail := text[loc[1]:]
	tail = tail[len(amountTailRe.FindString(tail)):]
	return value, text[:loc[0]] + " " + tail, true
}

// describe turns what is left of a recording without the verb and the amount into a label.
func describe(rest, fallback string) string {
	words := split(rest)
	kept := words[:0]
	for _, w := range words {
		if _, ok := currencyWords[w.key]; ok {
			continue
		}
		if w.key == "" && strings.ContainsAny(w.raw, "$") {
			continue
		}
		kept = append(kept, w)
	}

	for len(kept) > 0 && isConnective(kept[0]) {
		kept = kept[1:]
	}
	for len(kept) > 0 && isConnective(kept[len(kept)-1]) {
		kept = kept[:len(kept)-1]
	}

	desc := strings.TrimFunc(joinRaw(kept), func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
	if desc == "" {
		return fallback
	}
	return desc
}

func isConnective(w word) bool {
	if w.key == "" {
		return unicode.IsPunct([]rune(w.raw)[0])
	}
	_, ok := connectives[w.key]
	return ok
}
