package handler

import (
	"net/http"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
)

// ProfileHandler serves author profile pages
type ProfileHandler struct {
	feedService FeedService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(feedService FeedService) *ProfileHandler {
	return &ProfileHandler{feedService: feedService}
}

// Profile handles GET /{username}/
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	requesterID := middleware.GetUserID(r.Context())

	profile, feed, err := h.feedService.Profile(r.Context(), username, requesterID, pageParam(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := struct {
		Profile *model.AuthorProfile `json:"profile"`
		Posts   []model.PostView     `json:"posts"`
	}{
		Profile: profile,
		Posts:   feed.Posts,
	}

	WriteCollection(w, http.StatusOK, response, &feed.Page, map[string]string{
		"self": "/" + username + "/",
	})
}
