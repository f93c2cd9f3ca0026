package analysis

// DefaultStopWords is the built-in English stop-word list used by the
// tokenizer. Injected at construction so tests can substitute their own.
var DefaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
	"used", "it", "its", "this", "that", "these", "those", "i", "you", "he",
	"she", "we", "they", "what", "which", "who", "whom", "whose", "where",
	"when", "why", "how", "all", "each", "every", "both", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "just", "also", "now", "here",
	"there", "then", "once", "if", "because", "until", "while", "about",
	"into", "through", "during", "before", "after", "above", "below", "up",
	"down", "out", "off", "over", "under", "again", "further", "any", "your",
	"my", "his", "her", "our", "their", "them", "him", "me", "us", "get",
	"got", "like", "make", "made", "even", "still", "way", "well", "back",
	"being", "much", "many", "however", "although", "though", "since",
}
