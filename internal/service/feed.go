package service

import (
	"context"
	"fmt"

	"github.com/yatube/api/internal/model"
)

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context, limit, offset int) ([]*model.Post, error)
	CountAll(ctx context.Context) (int, error)
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*model.Post, error)
	CountByGroup(ctx context.Context, groupID string) (int, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]*model.Post, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (int, error)
}

// UserDirectory resolves users for display purposes
type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error)
}

// GroupReader resolves groups for display purposes
type GroupReader interface {
	GetByID(ctx context.Context, id string) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
}

// FollowReader answers follow relationship queries
type FollowReader interface {
	Exists(ctx context.Context, followerID, authorID string) (bool, error)
	ListAuthorIDs(ctx context.Context, followerID string) ([]string, error)
	CountFollowers(ctx context.Context, authorID string) (int, error)
	CountFollowing(ctx context.Context, followerID string) (int, error)
}

// FeedCache caches rendered feed pages. Implementations degrade to a miss
// on any backend failure so a cache outage never breaks the feed.
type FeedCache interface {
	GetFeed(ctx context.Context, key string) (*model.Feed, bool)
	SetFeed(ctx context.Context, key string, feed *model.Feed)
}

// FeedService assembles paginated post feeds. All feeds share the same
// ordering and page size; the index feed is additionally cached for a short
// window because it is the hottest page on the site.
type FeedService struct {
	postRepo   PostRepository
	userRepo   UserDirectory
	groupRepo  GroupReader
	followRepo FollowReader
	cache      FeedCache
}

// FeedServiceConfig holds configuration for the feed service
type FeedServiceConfig struct {
	PostRepo   PostRepository
	UserRepo   UserDirectory
	GroupRepo  GroupReader
	FollowRepo FollowReader
	Cache      FeedCache
}

// NewFeedService creates a new feed service
func NewFeedService(cfg FeedServiceConfig) *FeedService {
	return &FeedService{
		postRepo:   cfg.PostRepo,
		userRepo:   cfg.UserRepo,
		groupRepo:  cfg.GroupRepo,
		followRepo: cfg.FollowRepo,
		cache:      cfg.Cache,
	}
}

// Index returns a page of the sitewide feed, newest first
func (s *FeedService) Index(ctx context.Context, page int) (*model.Feed, error) {
	cacheKey := fmt.Sprintf("feed:index:%d", page)
	if s.cache != nil {
		if feed, ok := s.cache.GetFeed(ctx, cacheKey); ok {
			return feed, nil
		}
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pg := model.Paginate(total, model.PageSize, page)
	posts, err := s.postRepo.ListAll(ctx, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}

	feed, err := s.buildFeed(ctx, posts, pg)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetFeed(ctx, cacheKey, feed)
	}
	return feed, nil
}

// GroupFeed returns a group and a page of its posts
func (s *FeedService) GroupFeed(ctx context.Context, slug string, page int) (*model.Group, *model.Feed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}

	pg := model.Paginate(total, model.PageSize, page)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, pg.Limit, pg.Offset)
	if err != nil {
		return nil, nil, err
	}

	feed, err := s.buildFeed(ctx, posts, pg)
	if err != nil {
		return nil, nil, err
	}
	return group, feed, nil
}

// Profile returns an author's profile and a page of their posts. The
// requesterID may be empty for anonymous visitors, in which case the
// profile's Following flag is always false.
func (s *FeedService) Profile(ctx context.Context, username, requesterID string, page int) (*model.AuthorProfile, *model.Feed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if author == nil {
		return nil, nil, ErrUserNotFound
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}

	pg := model.Paginate(total, model.PageSize, page)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, pg.Limit, pg.Offset)
	if err != nil {
		return nil, nil, err
	}

	feed, err := s.buildFeed(ctx, posts, pg)
	if err != nil {
		return nil, nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}

	profile := &model.AuthorProfile{
		Author:         author.Summary(),
		PostCount:      total,
		FollowerCount:  followers,
		FollowingCount: following,
	}

	if requesterID != "" && requesterID != author.ID {
		follows, err := s.followRepo.Exists(ctx, requesterID, author.ID)
		if err != nil {
			return nil, nil, err
		}
		profile.Following = follows
	}

	return profile, feed, nil
}

// FollowingFeed returns a page of posts by authors the user follows. A user
// following nobody gets an empty first page rather than an error.
func (s *FeedService) FollowingFeed(ctx context.Context, userID string, page int) (*model.Feed, error) {
	authorIDs, err := s.followRepo.ListAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	pg := model.Paginate(total, model.PageSize, page)
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}

	return s.buildFeed(ctx, posts, pg)
}

// buildFeed decorates raw posts with author and group display data
func (s *FeedService) buildFeed(ctx context.Context, posts []*model.Post, pg model.Page) (*model.Feed, error) {
	authorIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}

	authors, err := s.userRepo.GetSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*model.Group)
	views := make([]model.PostView, 0, len(posts))
	for _, p := range posts {
		view := model.PostView{
			Post:   *p,
			Author: authors[p.AuthorID],
		}
		if p.GroupID != nil {
			group, ok := groups[*p.GroupID]
			if !ok {
				group, err = s.groupRepo.GetByID(ctx, *p.GroupID)
				if err != nil {
					return nil, err
				}
				groups[*p.GroupID] = group
			}
			view.Group = group
		}
		views = append(views, view)
	}

	return &model.Feed{Posts: views, Page: pg}, nil
}
