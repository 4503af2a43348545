package handler

import (
	"context"
	"net/http"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
)

// FeedService defines the feed operations the handler needs
type FeedService interface {
	Index(ctx context.Context, page int) (*model.Feed, error)
	GroupFeed(ctx context.Context, slug string, page int) (*model.Group, *model.Feed, error)
	Profile(ctx context.Context, username, requesterID string, page int) (*model.AuthorProfile, *model.Feed, error)
	FollowingFeed(ctx context.Context, userID string, page int) (*model.Feed, error)
}

// GroupService defines the group operations the handler needs
type GroupService interface {
	Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
}

// FeedHandler serves the paginated feed pages
type FeedHandler struct {
	feedService  FeedService
	groupService GroupService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService FeedService, groupService GroupService) *FeedHandler {
	return &FeedHandler{
		feedService:  feedService,
		groupService: groupService,
	}
}

// Index handles GET /
func (h *FeedHandler) Index(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feedService.Index(r.Context(), pageParam(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, feed.Posts, &feed.Page, map[string]string{
		"self": "/",
	})
}

// Group handles GET /group/{slug}/
func (h *FeedHandler) Group(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	group, feed, err := h.feedService.GroupFeed(r.Context(), slug, pageParam(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := struct {
		Group *model.Group     `json:"group"`
		Posts []model.PostView `json:"posts"`
	}{
		Group: group,
		Posts: feed.Posts,
	}

	WriteCollection(w, http.StatusOK, response, &feed.Page, map[string]string{
		"self": "/group/" + slug + "/",
	})
}

// Following handles GET /follow/, the aggregated feed of followed authors
func (h *FeedHandler) Following(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	feed, err := h.feedService.FollowingFeed(r.Context(), userID, pageParam(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, feed.Posts, &feed.Page, map[string]string{
		"self": "/follow/",
	})
}

// Groups handles GET /groups/, the group directory
func (h *FeedHandler) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, groups, map[string]string{
		"self": "/groups/",
	})
}
