package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
)

// PostgresFollowRepository implements FollowRepository using PostgreSQL.
type PostgresFollowRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository.
func NewPostgresFollowRepository(pool *pgxpool.Pool) *PostgresFollowRepository {
	return &PostgresFollowRepository{pool: pool}
}

// Create inserts a follow relationship. Returns domain.ErrAlreadyExists
// if the follower already follows the author.
func (r *PostgresFollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (id, follower_id, author_name, created_at)
		VALUES ($1, $2, $3, $4)`,
		follow.ID, follow.FollowerID, follow.AuthorName, follow.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

// Delete removes a follow relationship.
func (r *PostgresFollowRepository) Delete(ctx context.Context, followerID, authorName string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND author_name = $2`,
		followerID, authorName,
	)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists checks whether the follower already follows the author.
func (r *PostgresFollowRepository) Exists(ctx context.Context, followerID, authorName string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND author_name = $2)`,
		followerID, authorName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return exists, nil
}

// CountByAuthor returns the number of followers of an author.
func (r *PostgresFollowRepository) CountByAuthor(ctx context.Context, authorName string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM follows WHERE author_name = $1`,
		authorName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return count, nil
}

// AuthorsByFollower returns the author names a user follows.
func (r *PostgresFollowRepository) AuthorsByFollower(ctx context.Context, followerID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT author_name FROM follows WHERE follower_id = $1 ORDER BY author_name`,
		followerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list followed authors: %w", err)
	}
	defer rows.Close()

	return collectStrings(rows)
}

// FollowerEmailsByAuthor resolves the contact addresses of every user
// following the given author. This is the fan-out read path.
func (r *PostgresFollowRepository) FollowerEmailsByAuthor(ctx context.Context, authorName string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.email
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.author_name = $1 AND u.is_active
		ORDER BY u.email`,
		authorName,
	)
	if err != nil {
		return nil, fmt.Errorf("list follower emails: %w", err)
	}
	defer rows.Close()

	return collectStrings(rows)
}

func collectStrings(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return out, nil
}
