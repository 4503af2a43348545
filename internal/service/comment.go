package service

import (
	"context"

	"github.com/yatube/api/internal/model"
)

// CommentReader loads comments for display
type CommentReader interface {
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

// CommentWriter persists new comments
type CommentWriter interface {
	Create(ctx context.Context, comment *model.Comment) error
}

// CommentRepository combines comment reads and writes
type CommentRepository interface {
	CommentReader
	CommentWriter
}

// CommentService handles comments on posts
type CommentService struct {
	commentRepo CommentRepository
	postRepo    PostRepository
	userRepo    UserDirectory
}

// CommentServiceConfig holds configuration for the comment service
type CommentServiceConfig struct {
	CommentRepo CommentRepository
	PostRepo    PostRepository
	UserRepo    UserDirectory
}

// NewCommentService creates a new comment service
func NewCommentService(cfg CommentServiceConfig) *CommentService {
	return &CommentService{
		commentRepo: cfg.CommentRepo,
		postRepo:    cfg.PostRepo,
		userRepo:    cfg.UserRepo,
	}
}

// Add attaches a comment to a post. The username must match the post's
// author or the post is treated as missing.
func (s *CommentService) Add(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error) {
	if form.Text == "" {
		return nil, ErrEmptyText
	}
	if len(form.Text) > model.MaxCommentTextLength {
		return nil, ErrTextTooLong
	}

	postAuthor, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if postAuthor == nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.AuthorID != postAuthor.ID {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Text:     form.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
