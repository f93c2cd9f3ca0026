package analysis

// DefaultProfanityList is the built-in blocklist used by the scorer.
// Matching is exact-token only: a blocked word inside a longer word does
// not trigger a match, which keeps benign words like "shitake" clean at
// the cost of some false negatives.
var DefaultProfanityList = []string{
	"fuck", "shit", "ass", "bitch", "damn", "crap", "bastard", "hell",
	"dick", "cock", "pussy", "cunt", "whore", "slut", "fag", "nigger",
	"asshole", "bullshit", "motherfucker", "fucker", "fucking", "shitty",
}
