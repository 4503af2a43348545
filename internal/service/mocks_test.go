package service

import (
	"context"
	"time"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/pkg/jwt"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	createFunc        func(ctx context.Context, user *model.User) error
	getByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	getSummariesFunc  func(ctx context.Context, ids []string) (map[string]model.UserSummary, error)
	recordLoginFunc   func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error) {
	if m.getSummariesFunc != nil {
		return m.getSummariesFunc(ctx, ids)
	}
	summaries := make(map[string]model.UserSummary, len(ids))
	for _, id := range ids {
		summaries[id] = model.UserSummary{ID: id, Username: "user-" + id}
	}
	return summaries, nil
}

func (m *mockUserRepo) RecordLogin(ctx context.Context, id string) error {
	if m.recordLoginFunc != nil {
		return m.recordLoginFunc(ctx, id)
	}
	return nil
}

type mockPostRepo struct {
	createFunc        func(ctx context.Context, post *model.Post) error
	getByIDFunc       func(ctx context.Context, id string) (*model.Post, error)
	updateFunc        func(ctx context.Context, post *model.Post) error
	deleteFunc        func(ctx context.Context, id string) error
	listAllFunc       func(ctx context.Context, limit, offset int) ([]*model.Post, error)
	countAllFunc      func(ctx context.Context) (int, error)
	listByGroupFunc   func(ctx context.Context, groupID string, limit, offset int) ([]*model.Post, error)
	countByGroupFunc  func(ctx context.Context, groupID string) (int, error)
	listByAuthorFunc  func(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error)
	countByAuthorFunc func(ctx context.Context, authorID string) (int, error)
	listByAuthorsFunc func(ctx context.Context, authorIDs []string, limit, offset int) ([]*model.Post, error)
	countAuthorsFunc  func(ctx context.Context, authorIDs []string) (int, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	post.ID = "post:new"
	post.PubDate = time.Now()
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *model.Post) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) ListAll(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) CountAll(ctx context.Context) (int, error) {
	if m.countAllFunc != nil {
		return m.countAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*model.Post, error) {
	if m.listByGroupFunc != nil {
		return m.listByGroupFunc(ctx, groupID, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) CountByGroup(ctx context.Context, groupID string) (int, error) {
	if m.countByGroupFunc != nil {
		return m.countByGroupFunc(ctx, groupID)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error) {
	if m.listByAuthorFunc != nil {
		return m.listByAuthorFunc(ctx, authorID, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	if m.countByAuthorFunc != nil {
		return m.countByAuthorFunc(ctx, authorID)
	}
	return 0, nil
}

func (m *mockPostRepo) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]*model.Post, error) {
	if m.listByAuthorsFunc != nil {
		return m.listByAuthorsFunc(ctx, authorIDs, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) CountByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if m.countAuthorsFunc != nil {
		return m.countAuthorsFunc(ctx, authorIDs)
	}
	return 0, nil
}

type mockGroupRepo struct {
	createFunc    func(ctx context.Context, group *model.Group) error
	getByIDFunc   func(ctx context.Context, id string) (*model.Group, error)
	getBySlugFunc func(ctx context.Context, slug string) (*model.Group, error)
	listFunc      func(ctx context.Context) ([]*model.Group, error)
}

func (m *mockGroupRepo) Create(ctx context.Context, group *model.Group) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, group)
	}
	group.ID = "group:new"
	return nil
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id string) (*model.Group, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGroupRepo) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockGroupRepo) List(ctx context.Context) ([]*model.Group, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockFollowRepo struct {
	createFunc         func(ctx context.Context, followerID, authorID string) error
	deleteFunc         func(ctx context.Context, followerID, authorID string) error
	existsFunc         func(ctx context.Context, followerID, authorID string) (bool, error)
	listAuthorIDsFunc  func(ctx context.Context, followerID string) ([]string, error)
	countFollowersFunc func(ctx context.Context, authorID string) (int, error)
	countFollowingFunc func(ctx context.Context, followerID string) (int, error)
}

func (m *mockFollowRepo) Create(ctx context.Context, followerID, authorID string) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, followerID, authorID)
	}
	return nil
}

func (m *mockFollowRepo) Delete(ctx context.Context, followerID, authorID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, followerID, authorID)
	}
	return nil
}

func (m *mockFollowRepo) Exists(ctx context.Context, followerID, authorID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, followerID, authorID)
	}
	return false, nil
}

func (m *mockFollowRepo) ListAuthorIDs(ctx context.Context, followerID string) ([]string, error) {
	if m.listAuthorIDsFunc != nil {
		return m.listAuthorIDsFunc(ctx, followerID)
	}
	return nil, nil
}

func (m *mockFollowRepo) CountFollowers(ctx context.Context, authorID string) (int, error) {
	if m.countFollowersFunc != nil {
		return m.countFollowersFunc(ctx, authorID)
	}
	return 0, nil
}

func (m *mockFollowRepo) CountFollowing(ctx context.Context, followerID string) (int, error) {
	if m.countFollowingFunc != nil {
		return m.countFollowingFunc(ctx, followerID)
	}
	return 0, nil
}

type mockCommentRepo struct {
	createFunc     func(ctx context.Context, comment *model.Comment) error
	listByPostFunc func(ctx context.Context, postID string) ([]*model.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	comment.ID = "comment:new"
	comment.Created = time.Now()
	return nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	if m.listByPostFunc != nil {
		return m.listByPostFunc(ctx, postID)
	}
	return nil, nil
}

type mockSigner struct {
	signFunc func(claims jwt.Claims) (string, error)
}

func (m *mockSigner) Sign(claims jwt.Claims) (string, error) {
	if m.signFunc != nil {
		return m.signFunc(claims)
	}
	return "signed-token", nil
}

func (m *mockSigner) GetExpiration() time.Duration {
	return time.Hour
}

type mockFeedCache struct {
	store map[string]*model.Feed
	sets  int
	hits  int
}

func newMockFeedCache() *mockFeedCache {
	return &mockFeedCache{store: make(map[string]*model.Feed)}
}

func (m *mockFeedCache) GetFeed(ctx context.Context, key string) (*model.Feed, bool) {
	feed, ok := m.store[key]
	if ok {
		m.hits++
	}
	return feed, ok
}

func (m *mockFeedCache) SetFeed(ctx context.Context, key string, feed *model.Feed) {
	m.sets++
	m.store[key] = feed
}
