package analysis

import "strings"

// Scorer computes the heuristic quality score and the profanity flag for
// a document. The blocklist is injected at construction.
type Scorer struct {
	blocklist map[string]struct{}
}

// NewScorer creates a scorer with the given profanity blocklist.
func NewScorer(blocklist []string) *Scorer {
	blocked := make(map[string]struct{}, len(blocklist))
	for _, w := range blocklist {
		blocked[strings.ToLower(w)] = struct{}{}
	}
	return &Scorer{blocklist: blocked}
}

// Score returns a quality score in [0,100] and whether the text contains
// a blocked word. Both are total over arbitrary strings; empty inputs
// simply score low.
func (s *Scorer) Score(title, body string) (float64, bool) {
	return s.Quality(title, body), s.HasProfanity(title + " " + body)
}

// Quality sums independent capped heuristic signals and caps the total
// at 100.
func (s *Scorer) Quality(title, body string) float64 {
	var score float64

	// Title length: ideal 50-70 chars.
	titleLen := len(title)
	switch {
	case titleLen >= 50 && titleLen <= 70:
		score += 10
	case titleLen >= 30 && titleLen <= 90:
		score += 6
	case titleLen > 0:
		score += 3
	}

	// Body length: ideal 600-2000 words.
	wordCount := len(strings.Fields(body))
	switch {
	case wordCount >= 600 && wordCount <= 2000:
		score += 20
	case wordCount >= 300 && wordCount <= 3000:
		score += 12
	case wordCount >= 100:
		score += 6
	case wordCount > 0:
		score += 2
	}

	// Heading markers; longer content without headings gets partial credit.
	if strings.Contains(body, "#") || strings.Contains(body, "<h1") || strings.Contains(body, "<h2") {
		score += 10
	} else if len(body) > 500 {
		score += 3
	}

	// Paragraph structure.
	paragraphs := strings.Count(body, "\n") + 1
	switch {
	case paragraphs >= 3:
		score += 10
	case paragraphs >= 2:
		score += 5
	}

	// Readability: sentence count and average sentence length.
	sentences := countSentences(body)
	if sentences >= 5 {
		avg := float64(wordCount) / float64(sentences)
		switch {
		case avg >= 10 && avg <= 20:
			score += 15
		case avg >= 5 && avg <= 30:
			score += 10
		default:
			score += 5
		}
	} else if sentences >= 2 {
		score += 7
	}

	// Links and images.
	if strings.Contains(body, "http") || strings.Contains(body, "href") {
		score += 10
	}
	if strings.Contains(body, "<img") || strings.Contains(body, "![") {
		score += 10
	}

	// Title keywords appearing in the body.
	bodyLower := strings.ToLower(body)
	keywordMatches := 0
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) > 3 && strings.Contains(bodyLower, word) {
			keywordMatches++
		}
	}
	switch {
	case keywordMatches >= 3:
		score += 15
	case keywordMatches >= 1:
		score += 8
	}

	if score > 100 {
		score = 100
	}
	return score
}

// HasProfanity reports whether any exact whitespace-delimited token of
// the text, lower-cased and with non-letter characters removed, matches
// the blocklist. Substrings inside longer words do not match.
func (s *Scorer) HasProfanity(text string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case isSpace(r):
			b.WriteRune(' ')
		}
	}

	for _, word := range strings.Fields(b.String()) {
		if _, blocked := s.blocklist[word]; blocked {
			return true
		}
	}
	return false
}

// countSentences counts the non-empty segments produced by splitting on
// runs of '.', '!' and '?'. Empty text yields zero, keeping the average
// sentence length computation division-safe.
func countSentences(text string) int {
	count := 0
	segment := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if segment {
				count++
				segment = false
			}
			continue
		}
		if !isSpace(r) {
			segment = true
		}
	}
	if segment {
		count++
	}
	return count
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
