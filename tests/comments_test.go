package tests

/*
FEATURE: Commenting on Posts
DOMAIN: Comments

ACCEPTANCE CRITERIA:
===================

AC-COMMENT-001: Add Comment
  GIVEN an authenticated reader and a published post
  WHEN the reader submits a comment
  THEN the comment is attached to the post with a creation time

AC-COMMENT-002: Comment Validation
  GIVEN a comment form
  WHEN the text is empty or the post does not exist
  THEN the comment is rejected
*/

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/repository"
	"github.com/yatube/api/internal/service"
	"github.com/yatube/api/internal/testing/fixtures"
	"github.com/yatube/api/internal/testing/testdb"
)

func createCommentService(tdb *testdb.TestDB) *service.CommentService {
	return service.NewCommentService(service.CommentServiceConfig{
		CommentRepo: repository.NewCommentRepository(tdb.DB),
		PostRepo:    repository.NewPostRepository(tdb.DB),
		UserRepo:    repository.NewUserRepository(tdb.DB),
	})
}

func TestComment_Add(t *testing.T) {
	// AC-COMMENT-001: Add Comment
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	commentService := createCommentService(tdb)
	ctx := context.Background()

	author := f.CreateUser(t)
	reader := f.CreateUser(t)
	post := f.CreatePost(t, author)

	comment, err := commentService.Add(ctx, reader.ID, author.Username, post.ID, model.CommentForm{
		Text: "great post",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, reader.ID, comment.AuthorID)
	assert.Equal(t, "great post", comment.Text)
	assert.False(t, comment.Created.IsZero())
}

func TestComment_Validation(t *testing.T) {
	// AC-COMMENT-002: Comment Validation
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	commentService := createCommentService(tdb)
	ctx := context.Background()

	author := f.CreateUser(t)
	reader := f.CreateUser(t)
	post := f.CreatePost(t, author)

	_, err := commentService.Add(ctx, reader.ID, author.Username, post.ID, model.CommentForm{Text: ""})
	assert.ErrorIs(t, err, service.ErrEmptyText)

	_, err = commentService.Add(ctx, reader.ID, author.Username, "post:missing", model.CommentForm{Text: "hello"})
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}
