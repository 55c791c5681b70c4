package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/lensline/eyewear-api/internal/models"
)

// CommentRepository handles data access for customer comments.
type CommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// List returns all comments, newest first.
func (r *CommentRepository) List(ctx context.Context) ([]models.Comment, error) {
	const q = `SELECT id, comment, created_at FROM comments ORDER BY created_at DESC`
	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, q); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts a comment and returns the stored row.
func (r *CommentRepository) Create(ctx context.Context, text string) (*models.Comment, error) {
	const q = `INSERT INTO comments (comment) VALUES ($1) RETURNING id, comment, created_at`
	var cm models.Comment
	if err := r.db.GetContext(ctx, &cm, q, text); err != nil {
		return nil, err
	}
	return &cm, nil
}
