package repository

import (
	"context"
	"errors"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db database.Database
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment on a post
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		CREATE comment CONTENT {
			post: type::record($post),
			author: type::record($author),
			text: $text,
			created: time::now()
		}
	`

	vars := map[string]interface{}{
		"post":   comment.PostID,
		"author": comment.AuthorID,
		"text":   comment.Text,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result, "created")
	if err != nil {
		return err
	}

	comment.ID = created.ID
	comment.Created = created.CreatedOn
	return nil
}

// ListByPost retrieves a post's comments, newest first
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	query := `
		SELECT * FROM comment
		WHERE post = type::record($post)
		ORDER BY created DESC, id DESC
	`
	vars := map[string]interface{}{"post": postID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryRows(result)
	comments := make([]*model.Comment, 0, len(rows))
	for _, row := range rows {
		if c := parseCommentRow(row); c != nil {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// CountByPost counts a post's comments
func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	query := `SELECT count() AS count FROM comment WHERE post = type::record($post) GROUP ALL`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"post": postID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// DeleteByPost removes all comments attached to a post
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	query := `DELETE comment WHERE post = type::record($post)`
	return r.db.Execute(ctx, query, map[string]interface{}{"post": postID})
}

func parseCommentRow(row map[string]interface{}) *model.Comment {
	if row == nil {
		return nil
	}

	comment := &model.Comment{
		ID:       convertSurrealID(row["id"]),
		PostID:   convertSurrealID(row["post"]),
		AuthorID: convertSurrealID(row["author"]),
		Text:     getString(row, "text"),
	}
	if t := getTime(row, "created"); t != nil {
		comment.Created = *t
	}
	return comment
}
