// Package analysis implements the document analysis core: tokenization
// with light suffix stemming, tag extraction via a single-document
// TF-IDF approximation, and heuristic quality/profanity scoring.
package analysis

import "strings"

// Tokenizer turns raw document text into a filtered sequence of candidate
// terms for tag extraction.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stop-word list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize normalizes title and body into one term sequence. The title is
// concatenated twice so its terms weigh double downstream. Tokens shorter
// than 4 runes, stop words, and tokens carrying digits are dropped;
// duplicates are retained in first-appearance order.
func (t *Tokenizer) Tokenize(title, body string) []string {
	full := strings.ToLower(title + " " + title + " " + body)

	var b strings.Builder
	b.Grow(len(full))
	// Non-letter characters become spaces, so punctuated compounds
	// split: "micro-services" yields "micro" and "services", and the
	// fragments of "don't" fall below the length floor.
	for _, r := range full {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = stem(w)
		if len(w) <= 3 {
			continue
		}
		if _, stop := t.stopwords[w]; stop {
			continue
		}
		if strings.ContainsAny(w, "0123456789") {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// stem strips at most one common suffix per word. The length checks apply
// to the word before stripping, so "running" stems to "runn", not "run".
// That imprecision is intentional and load-bearing for tag stability;
// keep the rules and their order fixed.
func stem(word string) string {
	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "es") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && len(word) > 4 && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}
