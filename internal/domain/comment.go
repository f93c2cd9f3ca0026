package domain

import "time"

// Comment represents a comment left on a document.
type Comment struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	DocumentID string    `json:"document_id"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
