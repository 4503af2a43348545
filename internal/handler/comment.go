package handler

import (
	"context"
	"net/http"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
)

// CommentService defines the comment operations the handler needs
type CommentService interface {
	Add(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error)
}

// CommentHandler handles adding comments to posts
type CommentHandler struct {
	commentService CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add handles POST /{username}/{postID}/comment/
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")
	postID := fullPostID(r.PathValue("postID"))

	var form model.CommentForm
	if err := DecodeJSON(r, &form); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.commentService.Add(r.Context(), userID, username, postID, form)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	location := "/" + username + "/" + r.PathValue("postID") + "/"
	w.Header().Set("Location", location)
	WriteData(w, http.StatusCreated, comment, map[string]string{
		"post": location,
	})
}
