package analysis

import (
	"math"
	"sort"
)

// ExtractTags selects up to maxTags descriptive tags from a token
// sequence produced by Tokenizer.Tokenize.
//
// Per distinct term: TF = count/total, pseudo-IDF = ln(distinct/count)+1,
// score = TF x pseudo-IDF. This is a single-document approximation, not a
// corpus IDF: it rewards terms that are frequent but not ubiquitous
// within the same document. That simplification is intentional; replacing
// it with a real corpus model would re-scope the feature.
//
// Ties are broken by lexical order so the result is deterministic.
func ExtractTags(tokens []string, maxTags int) []string {
	if len(tokens) == 0 || maxTags <= 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	distinct := float64(len(counts))

	type scored struct {
		term  string
		score float64
	}
	ranked := make([]scored, 0, len(counts))
	for term, count := range counts {
		tf := float64(count) / total
		idf := math.Log(distinct/float64(count)) + 1
		ranked = append(ranked, scored{term: term, score: tf * idf})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})

	if maxTags > len(ranked) {
		maxTags = len(ranked)
	}
	tags := make([]string, maxTags)
	for i := 0; i < maxTags; i++ {
		tags[i] = ranked[i].term
	}
	return tags
}
