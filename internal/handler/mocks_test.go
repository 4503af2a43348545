package handler

import (
	"context"
	"io"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/service"
)

type mockAuthService struct {
	signupFunc      func(ctx context.Context, req model.SignupRequest) (*service.AuthResult, error)
	loginFunc       func(ctx context.Context, req model.LoginRequest) (*service.AuthResult, error)
	getUserByIDFunc func(ctx context.Context, userID string) (*model.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req model.SignupRequest) (*service.AuthResult, error) {
	return m.signupFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req model.LoginRequest) (*service.AuthResult, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	return m.getUserByIDFunc(ctx, userID)
}

type mockFeedService struct {
	indexFunc         func(ctx context.Context, page int) (*model.Feed, error)
	groupFeedFunc     func(ctx context.Context, slug string, page int) (*model.Group, *model.Feed, error)
	profileFunc       func(ctx context.Context, username, requesterID string, page int) (*model.AuthorProfile, *model.Feed, error)
	followingFeedFunc func(ctx context.Context, userID string, page int) (*model.Feed, error)
}

func (m *mockFeedService) Index(ctx context.Context, page int) (*model.Feed, error) {
	return m.indexFunc(ctx, page)
}

func (m *mockFeedService) GroupFeed(ctx context.Context, slug string, page int) (*model.Group, *model.Feed, error) {
	return m.groupFeedFunc(ctx, slug, page)
}

func (m *mockFeedService) Profile(ctx context.Context, username, requesterID string, page int) (*model.AuthorProfile, *model.Feed, error) {
	return m.profileFunc(ctx, username, requesterID, page)
}

func (m *mockFeedService) FollowingFeed(ctx context.Context, userID string, page int) (*model.Feed, error) {
	return m.followingFeedFunc(ctx, userID, page)
}

type mockGroupService struct {
	createFunc func(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error)
	listFunc   func(ctx context.Context) ([]*model.Group, error)
}

func (m *mockGroupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	return m.createFunc(ctx, req)
}

func (m *mockGroupService) List(ctx context.Context) ([]*model.Group, error) {
	return m.listFunc(ctx)
}

type mockPostService struct {
	createFunc func(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error)
	getFunc    func(ctx context.Context, username, postID string) (*service.PostDetail, error)
	editFunc   func(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error)
	deleteFunc func(ctx context.Context, userID string, isAdmin bool, postID string) error
}

func (m *mockPostService) Create(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error) {
	return m.createFunc(ctx, authorID, form)
}

func (m *mockPostService) Get(ctx context.Context, username, postID string) (*service.PostDetail, error) {
	return m.getFunc(ctx, username, postID)
}

func (m *mockPostService) Edit(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error) {
	return m.editFunc(ctx, userID, postID, form)
}

func (m *mockPostService) Delete(ctx context.Context, userID string, isAdmin bool, postID string) error {
	return m.deleteFunc(ctx, userID, isAdmin, postID)
}

type mockFollowService struct {
	followFunc   func(ctx context.Context, followerID, authorUsername string) error
	unfollowFunc func(ctx context.Context, followerID, authorUsername string) error
}

func (m *mockFollowService) Follow(ctx context.Context, followerID, authorUsername string) error {
	return m.followFunc(ctx, followerID, authorUsername)
}

func (m *mockFollowService) Unfollow(ctx context.Context, followerID, authorUsername string) error {
	return m.unfollowFunc(ctx, followerID, authorUsername)
}

type mockCommentService struct {
	addFunc func(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error)
}

func (m *mockCommentService) Add(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error) {
	return m.addFunc(ctx, authorID, username, postID, form)
}

type mockMediaUploader struct {
	uploadFunc func(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

func (m *mockMediaUploader) UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	return m.uploadFunc(ctx, filename, r, size, contentType)
}
