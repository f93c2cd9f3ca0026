package domain

import (
	"strings"
	"time"
)

// Status represents the moderation lifecycle state of a document.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusReview     Status = "review"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

// ValidStatuses contains all valid document statuses.
var ValidStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusReview,
	StatusApproved,
	StatusRejected,
}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status Status) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Document represents a submitted text document moving through the
// analysis and moderation pipeline. QualityScore, NoveltyScore, Tags and
// ProfanityFound are unset until the pipeline has run.
type Document struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Author string   `json:"author"`
	Status Status   `json:"status"`
	Tags   []string `json:"tags,omitempty"`

	// QualityScore is a heuristic score in [0,100].
	QualityScore *float64 `json:"quality_score,omitempty"`
	// NoveltyScore is a placeholder in [0,1]. It carries no meaning yet;
	// the similarity model that should produce it is not implemented.
	NoveltyScore *float64 `json:"novelty_score,omitempty"`
	// ProfanityFound is nil until the document has been analyzed.
	ProfanityFound *bool `json:"profanity_found,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagsString returns the tags in their external comma-joined form
// ("term1, term2, term3").
func (d *Document) TagsString() string {
	return strings.Join(d.Tags, ", ")
}

// ParseTags splits the external comma-joined tag representation back into
// a tag slice. Empty input yields nil.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Terminal reports whether the pipeline has finished with this document.
// Moderation actions may still transition terminal documents; the
// pipeline itself never revisits them.
func (d *Document) Terminal() bool {
	return d.Status == StatusReview || d.Status == StatusApproved || d.Status == StatusRejected
}
