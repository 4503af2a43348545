package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yatube/api/internal/model"
)

func commentTestService(commentRepo *mockCommentRepo) *CommentService {
	return NewCommentService(CommentServiceConfig{
		CommentRepo: commentRepo,
		PostRepo: &mockPostRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Post, error) {
				if id == "post:1" {
					return &model.Post{ID: "post:1", AuthorID: "user:mike", Text: "hello"}, nil
				}
				return nil, nil
			},
		},
		UserRepo: &mockUserRepo{
			getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
				if username == "mike" {
					return &model.User{ID: "user:mike", Username: "mike"}, nil
				}
				return nil, nil
			},
		},
	})
}

func TestCommentService_Add_Success(t *testing.T) {
	var saved *model.Comment
	svc := commentTestService(&mockCommentRepo{
		createFunc: func(ctx context.Context, comment *model.Comment) error {
			saved = comment
			comment.ID = "comment:1"
			return nil
		},
	})

	comment, err := svc.Add(context.Background(), "user:anna", "mike", "post:1", model.CommentForm{Text: "nice post"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if comment.ID != "comment:1" {
		t.Errorf("comment ID = %q, want comment:1", comment.ID)
	}
	if saved.PostID != "post:1" || saved.AuthorID != "user:anna" {
		t.Errorf("saved comment = (%s, %s), want (post:1, user:anna)", saved.PostID, saved.AuthorID)
	}
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	svc := commentTestService(&mockCommentRepo{})

	_, err := svc.Add(context.Background(), "user:anna", "mike", "post:1", model.CommentForm{})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("Add() error = %v, want ErrEmptyText", err)
	}
}

func TestCommentService_Add_UnknownPost(t *testing.T) {
	svc := commentTestService(&mockCommentRepo{})

	_, err := svc.Add(context.Background(), "user:anna", "mike", "post:999", model.CommentForm{Text: "hi"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Add() error = %v, want ErrPostNotFound", err)
	}
}

func TestCommentService_Add_UsernameMismatch(t *testing.T) {
	svc := NewCommentService(CommentServiceConfig{
		CommentRepo: &mockCommentRepo{},
		PostRepo: &mockPostRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Post, error) {
				return &model.Post{ID: "post:1", AuthorID: "user:mike"}, nil
			},
		},
		UserRepo: &mockUserRepo{
			getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
				return &model.User{ID: "user:anna", Username: "anna"}, nil
			},
		},
	})

	// post:1 belongs to mike, but the URL names anna
	_, err := svc.Add(context.Background(), "user:bob", "anna", "post:1", model.CommentForm{Text: "hi"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Add() error = %v, want ErrPostNotFound", err)
	}
}
