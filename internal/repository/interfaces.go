package repository

import (
	"context"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
)

// DocumentRepository defines methods for document data access.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Document, error)
	ListByAuthor(ctx context.Context, author string) ([]domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByDocument(ctx context.Context, documentID string) ([]domain.Comment, error)
}

// FollowRepository defines methods for follow-relationship data access.
// FollowerEmailsByAuthor is the read path the notification fan-out
// depends on.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, authorName string) error
	Exists(ctx context.Context, followerID, authorName string) (bool, error)
	CountByAuthor(ctx context.Context, authorName string) (int64, error)
	AuthorsByFollower(ctx context.Context, followerID string) ([]string, error)
	FollowerEmailsByAuthor(ctx context.Context, authorName string) ([]string, error)
}
