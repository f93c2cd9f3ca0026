package domain

import "time"

// Follow represents a subscription of a user to an author's publications.
// The (follower, author) pair is unique.
type Follow struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
