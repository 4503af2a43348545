package service

import (
	"context"

	"github.com/yatube/api/internal/model"
)

// PostService handles post creation, viewing and editing
type PostService struct {
	postRepo    PostRepository
	userRepo    UserDirectory
	groupRepo   GroupReader
	commentRepo CommentReader
}

// PostServiceConfig holds configuration for the post service
type PostServiceConfig struct {
	PostRepo    PostRepository
	UserRepo    UserDirectory
	GroupRepo   GroupReader
	CommentRepo CommentReader
}

// NewPostService creates a new post service
func NewPostService(cfg PostServiceConfig) *PostService {
	return &PostService{
		postRepo:    cfg.PostRepo,
		userRepo:    cfg.UserRepo,
		groupRepo:   cfg.GroupRepo,
		commentRepo: cfg.CommentRepo,
	}
}

// PostDetail bundles everything shown on a single post page
type PostDetail struct {
	Post            model.PostView      `json:"post"`
	Comments        []model.CommentView `json:"comments"`
	AuthorPostCount int                 `json:"author_post_count"`
}

// Create publishes a new post for the author
func (s *PostService) Create(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error) {
	if err := validatePostText(form.Text); err != nil {
		return nil, err
	}

	var groupID *string
	if form.GroupSlug != nil && *form.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, *form.GroupSlug)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		groupID = &group.ID
	}

	post := &model.Post{
		Text:     form.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    form.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get loads a post page by author username and post ID. The username must
// match the post's actual author or the post is treated as missing.
func (s *PostService) Get(ctx context.Context, username, postID string) (*PostDetail, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.AuthorID != author.ID {
		return nil, ErrPostNotFound
	}

	view := model.PostView{
		Post:   *post,
		Author: author.Summary(),
	}
	if post.GroupID != nil {
		group, err := s.groupRepo.GetByID(ctx, *post.GroupID)
		if err != nil {
			return nil, err
		}
		view.Group = group
	}

	comments, err := s.loadComments(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:            view,
		Comments:        comments,
		AuthorPostCount: count,
	}, nil
}

// Edit rewrites a post's text, group and image. Only the author may edit;
// the publication date is preserved.
func (s *PostService) Edit(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error) {
	if err := validatePostText(form.Text); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotPostAuthor
	}

	var groupID *string
	if form.GroupSlug != nil && *form.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, *form.GroupSlug)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		groupID = &group.ID
	}

	post.Text = form.Text
	post.GroupID = groupID
	if form.Image != nil {
		post.Image = form.Image
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. The author or an admin may delete it; comments go
// with it via the schema cascade.
func (s *PostService) Delete(ctx context.Context, userID string, isAdmin bool, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID && !isAdmin {
		return ErrNotPostAuthor
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *PostService) loadComments(ctx context.Context, postID string) ([]model.CommentView, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	authors, err := s.userRepo.GetSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]model.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, model.CommentView{
			Comment: *c,
			Author:  authors[c.AuthorID],
		})
	}
	return views, nil
}

func validatePostText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if len(text) > model.MaxPostTextLength {
		return ErrTextTooLong
	}
	return nil
}
