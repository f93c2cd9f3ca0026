package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
)

// PostgresDocumentRepository implements DocumentRepository using PostgreSQL.
type PostgresDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresDocumentRepository creates a new PostgresDocumentRepository.
func NewPostgresDocumentRepository(pool *pgxpool.Pool) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{pool: pool}
}

const documentColumns = `id, title, body, author, status, tags, quality_score, novelty_score, profanity_found, created_at, updated_at`

// Create inserts a new document.
func (r *PostgresDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (id, title, body, author, status, tags, quality_score, novelty_score, profanity_found, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		doc.ID, doc.Title, doc.Body, doc.Author, string(doc.Status), doc.TagsString(),
		doc.QualityScore, doc.NoveltyScore, doc.ProfanityFound, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID retrieves a document by ID. Returns domain.ErrNotFound if it
// does not exist.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List retrieves all documents, newest first.
func (r *PostgresDocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// ListByStatus retrieves documents in the given lifecycle state.
func (r *PostgresDocumentRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE status = $1 ORDER BY created_at DESC`,
		string(status))
	if err != nil {
		return nil, fmt.Errorf("list documents by status: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// ListByAuthor retrieves documents by author name.
func (r *PostgresDocumentRepository) ListByAuthor(ctx context.Context, author string) ([]domain.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE author = $1 ORDER BY created_at DESC`,
		author)
	if err != nil {
		return nil, fmt.Errorf("list documents by author: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// Update persists the current state, derived scores and tags of a
// document.
func (r *PostgresDocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE documents
		SET title = $2, body = $3, status = $4, tags = $5,
		    quality_score = $6, novelty_score = $7, profanity_found = $8,
		    updated_at = $9
		WHERE id = $1`,
		doc.ID, doc.Title, doc.Body, string(doc.Status), doc.TagsString(),
		doc.QualityScore, doc.NoveltyScore, doc.ProfanityFound, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var status, tags string
	if err := row.Scan(
		&doc.ID, &doc.Title, &doc.Body, &doc.Author, &status, &tags,
		&doc.QualityScore, &doc.NoveltyScore, &doc.ProfanityFound,
		&doc.CreatedAt, &doc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	doc.Status = domain.Status(status)
	doc.Tags = domain.ParseTags(tags)
	return &doc, nil
}

func collectDocuments(rows pgx.Rows) ([]domain.Document, error) {
	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	return docs, nil
}
