package handler

import (
	"context"
	"net/http"

	"github.com/yatube/api/internal/middleware"
)

// FollowService defines the follow operations the handler needs
type FollowService interface {
	Follow(ctx context.Context, followerID, authorUsername string) error
	Unfollow(ctx context.Context, followerID, authorUsername string) error
}

// FollowHandler handles subscribing to and unsubscribing from authors
type FollowHandler struct {
	followService FollowService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(followService FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow handles POST /{username}/follow/
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")

	if err := h.followService.Follow(r.Context(), userID, username); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	http.Redirect(w, r, "/"+username+"/", http.StatusFound)
}

// Unfollow handles POST /{username}/unfollow/
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")

	if err := h.followService.Unfollow(r.Context(), userID, username); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	http.Redirect(w, r, "/"+username+"/", http.StatusFound)
}
