package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/service"
)

// PostService defines the post operations the handler needs
type PostService interface {
	Create(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error)
	Get(ctx context.Context, username, postID string) (*service.PostDetail, error)
	Edit(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error)
	Delete(ctx context.Context, userID string, isAdmin bool, postID string) error
}

// MediaUploader stores uploaded images and returns their public URLs
type MediaUploader interface {
	UploadImage(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// PostHandler handles post creation, viewing and editing
type PostHandler struct {
	postService PostService
	media       MediaUploader
}

// NewPostHandler creates a new post handler. media may be nil when image
// uploads are disabled.
func NewPostHandler(postService PostService, media MediaUploader) *PostHandler {
	return &PostHandler{
		postService: postService,
		media:       media,
	}
}

// Create handles POST /new/
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := middleware.GetUsername(r.Context())

	form, problem := h.decodePostForm(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	post, err := h.postService.Create(r.Context(), userID, *form)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	location := "/" + username + "/" + shortID(post.ID) + "/"
	w.Header().Set("Location", location)
	WriteData(w, http.StatusCreated, post, map[string]string{
		"self": location,
	})
}

// Detail handles GET /{username}/{postID}/
func (h *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	postID := fullPostID(r.PathValue("postID"))

	detail, err := h.postService.Get(r.Context(), username, postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, detail, map[string]string{
		"self":   "/" + username + "/" + r.PathValue("postID") + "/",
		"author": "/" + username + "/",
	})
}

// Edit handles POST /{username}/{postID}/edit/. A non-author is bounced back
// to the post page instead of seeing an error.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")
	postID := fullPostID(r.PathValue("postID"))

	form, problem := h.decodePostForm(r)
	if problem != nil {
		WriteError(w, problem)
		return
	}

	post, err := h.postService.Edit(r.Context(), userID, postID, *form)
	if err != nil {
		if errors.Is(err, service.ErrNotPostAuthor) {
			http.Redirect(w, r, "/"+username+"/"+r.PathValue("postID")+"/", http.StatusFound)
			return
		}
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, post, map[string]string{
		"self": "/" + username + "/" + r.PathValue("postID") + "/",
	})
}

// CreateForm handles GET /new/, returning an empty authoring form scaffold
// with links to the submit target and the available groups.
func (h *PostHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, model.PostForm{}, map[string]string{
		"submit": "/new/",
		"groups": "/groups/",
	})
}

// EditForm handles GET /{username}/{postID}/edit/, returning the current
// post for form prefill. A non-author is bounced back to the post page.
func (h *PostHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")
	postID := fullPostID(r.PathValue("postID"))

	detail, err := h.postService.Get(r.Context(), username, postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if detail.Post.Post.AuthorID != userID {
		http.Redirect(w, r, "/"+username+"/"+r.PathValue("postID")+"/", http.StatusFound)
		return
	}

	WriteData(w, http.StatusOK, detail.Post, map[string]string{
		"self": "/" + username + "/" + r.PathValue("postID") + "/edit/",
	})
}

// Delete handles DELETE /{username}/{postID}/
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	postID := fullPostID(r.PathValue("postID"))

	if err := h.postService.Delete(r.Context(), claims.UserID, claims.IsAdmin(), postID); err != nil {
		if errors.Is(err, service.ErrNotPostAuthor) {
			WriteError(w, model.NewForbiddenError(err.Error()))
			return
		}
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// decodePostForm reads a post form from either a JSON body or a multipart
// form with an optional image file.
func (h *PostHandler) decodePostForm(r *http.Request) (*model.PostForm, *model.ProblemDetails) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType != "multipart/form-data" {
		var form model.PostForm
		if err := DecodeJSON(r, &form); err != nil {
			return nil, model.NewBadRequestError("invalid request body")
		}
		return &form, nil
	}

	if err := r.ParseMultipartForm(service.MaxImageSize + 1<<20); err != nil {
		return nil, model.NewBadRequestError("invalid multipart form")
	}

	form := model.PostForm{Text: r.FormValue("text")}
	if group := r.FormValue("group"); group != "" {
		form.GroupSlug = &group
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return &form, nil
	}
	if err != nil {
		return nil, model.NewBadRequestError("invalid image upload")
	}
	defer func() { _ = file.Close() }()

	if h.media == nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "image", Message: "image uploads are disabled"},
		})
	}

	url, err := h.media.UploadImage(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, MapServiceError(err)
	}
	form.Image = &url
	return &form, nil
}

// fullPostID expands the short ID used in URLs into a full record ID
func fullPostID(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return "post:" + id
}

// shortID strips the table prefix for use in URLs
func shortID(id string) string {
	if i := strings.Index(id, ":"); i >= 0 {
		return id[i+1:]
	}
	return id
}
