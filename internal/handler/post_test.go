package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/service"
	"github.com/yatube/api/pkg/jwt"
)

func TestPostHandler_Create(t *testing.T) {
	svc := &mockPostService{
		createFunc: func(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error) {
			if authorID != "user:1" {
				t.Errorf("expected author user:1, got %s", authorID)
			}
			if form.GroupSlug == nil || *form.GroupSlug != "cats" {
				t.Errorf("expected group slug cats, got %v", form.GroupSlug)
			}
			return &model.Post{ID: "post:9", Text: form.Text, AuthorID: authorID}, nil
		},
	}
	h := NewPostHandler(svc, nil)

	body := strings.NewReader(`{"text":"a new post","group":"cats"}`)
	rec := doAuthedRequest(h.Create, "POST /new/", http.MethodPost, "/new/", body, "user:1", "leo", false)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/leo/9/" {
		t.Errorf("expected Location /leo/9/, got %s", loc)
	}
}

func TestPostHandler_CreateEmptyText(t *testing.T) {
	svc := &mockPostService{
		createFunc: func(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error) {
			return nil, service.ErrEmptyText
		},
	}
	h := NewPostHandler(svc, nil)

	body := strings.NewReader(`{"text":""}`)
	rec := doAuthedRequest(h.Create, "POST /new/", http.MethodPost, "/new/", body, "user:1", "leo", false)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPostHandler_CreateMultipartWithImage(t *testing.T) {
	uploader := &mockMediaUploader{
		uploadFunc: func(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
			if filename != "cat.png" {
				t.Errorf("expected filename cat.png, got %s", filename)
			}
			return "https://media.test/posts/abc.png", nil
		},
	}
	svc := &mockPostService{
		createFunc: func(ctx context.Context, authorID string, form model.PostForm) (*model.Post, error) {
			if form.Image == nil || *form.Image != "https://media.test/posts/abc.png" {
				t.Errorf("expected uploaded image URL on form, got %v", form.Image)
			}
			return &model.Post{ID: "post:9", Text: form.Text}, nil
		},
	}
	h := NewPostHandler(svc, uploader)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("text", "look at my cat"); err != nil {
		t.Fatal(err)
	}
	part, err := mw.CreateFormFile("image", "cat.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /new/", h.Create)
	req := httptest.NewRequest(http.MethodPost, "/new/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	claims := &jwt.Claims{UserID: "user:1", Username: "leo", Role: "user"}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user:1")
	ctx = context.WithValue(ctx, middleware.UsernameKey, "leo")
	ctx = context.WithValue(ctx, middleware.ClaimsKey, claims)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPostHandler_CreateForm(t *testing.T) {
	h := NewPostHandler(&mockPostService{}, nil)

	rec := doAuthedRequest(h.CreateForm, "GET /new/", http.MethodGet, "/new/", nil, "user:leo", "leo", false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Links map[string]string `json:"links"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Links["submit"] != "/new/" {
		t.Errorf("expected submit link /new/, got %q", resp.Links["submit"])
	}
	if resp.Links["groups"] != "/groups/" {
		t.Errorf("expected groups link /groups/, got %q", resp.Links["groups"])
	}
}

func TestPostHandler_DetailUnknownPost(t *testing.T) {
	svc := &mockPostService{
		getFunc: func(ctx context.Context, username, postID string) (*service.PostDetail, error) {
			return nil, service.ErrPostNotFound
		},
	}
	h := NewPostHandler(svc, nil)

	rec := doRequest(h.Detail, "GET /{username}/{postID}/", http.MethodGet, "/leo/404/", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPostHandler_DetailExpandsShortID(t *testing.T) {
	var gotID string
	svc := &mockPostService{
		getFunc: func(ctx context.Context, username, postID string) (*service.PostDetail, error) {
			gotID = postID
			return &service.PostDetail{
				Post: model.PostView{
					Post:   model.Post{ID: "post:9", Text: "hello"},
					Author: model.UserSummary{ID: "user:1", Username: "leo"},
				},
			}, nil
		},
	}
	h := NewPostHandler(svc, nil)

	rec := doRequest(h.Detail, "GET /{username}/{postID}/", http.MethodGet, "/leo/9/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "post:9" {
		t.Errorf("expected expanded record ID post:9, got %s", gotID)
	}
}

func TestPostHandler_EditByNonAuthorRedirectsToPost(t *testing.T) {
	svc := &mockPostService{
		editFunc: func(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error) {
			return nil, service.ErrNotPostAuthor
		},
	}
	h := NewPostHandler(svc, nil)

	body := strings.NewReader(`{"text":"rewritten"}`)
	rec := doAuthedRequest(h.Edit, "POST /{username}/{postID}/edit/", http.MethodPost, "/leo/9/edit/", body, "user:2", "sonya", false)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/leo/9/" {
		t.Errorf("expected redirect to /leo/9/, got %s", loc)
	}
}

func TestPostHandler_EditByAuthor(t *testing.T) {
	svc := &mockPostService{
		editFunc: func(ctx context.Context, userID, postID string, form model.PostForm) (*model.Post, error) {
			if userID != "user:1" || postID != "post:9" {
				t.Errorf("unexpected edit args: %s %s", userID, postID)
			}
			return &model.Post{ID: "post:9", Text: form.Text, AuthorID: userID}, nil
		},
	}
	h := NewPostHandler(svc, nil)

	body := strings.NewReader(`{"text":"rewritten"}`)
	rec := doAuthedRequest(h.Edit, "POST /{username}/{postID}/edit/", http.MethodPost, "/leo/9/edit/", body, "user:1", "leo", false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPostHandler_DeleteByNonAuthor(t *testing.T) {
	svc := &mockPostService{
		deleteFunc: func(ctx context.Context, userID string, isAdmin bool, postID string) error {
			return service.ErrNotPostAuthor
		},
	}
	h := NewPostHandler(svc, nil)

	rec := doAuthedRequest(h.Delete, "DELETE /{username}/{postID}/", http.MethodDelete, "/leo/9/", nil, "user:2", "sonya", false)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestPostHandler_DeleteAsAdmin(t *testing.T) {
	var gotAdmin bool
	svc := &mockPostService{
		deleteFunc: func(ctx context.Context, userID string, isAdmin bool, postID string) error {
			gotAdmin = isAdmin
			return nil
		},
	}
	h := NewPostHandler(svc, nil)

	rec := doAuthedRequest(h.Delete, "DELETE /{username}/{postID}/", http.MethodDelete, "/leo/9/", nil, "user:3", "mod", true)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !gotAdmin {
		t.Error("expected admin flag to reach the service")
	}
}

func TestCommentHandler_Add(t *testing.T) {
	svc := &mockCommentService{
		addFunc: func(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error) {
			if username != "leo" {
				t.Errorf("expected username leo, got %s", username)
			}
			if postID != "post:9" {
				t.Errorf("expected post:9, got %s", postID)
			}
			return &model.Comment{ID: "comment:1", Text: form.Text, AuthorID: authorID, PostID: postID}, nil
		},
	}
	h := NewCommentHandler(svc)

	body := strings.NewReader(`{"text":"nice one"}`)
	rec := doAuthedRequest(h.Add, "POST /{username}/{postID}/comment/", http.MethodPost, "/leo/9/comment/", body, "user:2", "sonya", false)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/leo/9/" {
		t.Errorf("expected Location /leo/9/, got %s", loc)
	}
}

func TestCommentHandler_AddToUnknownPost(t *testing.T) {
	svc := &mockCommentService{
		addFunc: func(ctx context.Context, authorID, username, postID string, form model.CommentForm) (*model.Comment, error) {
			return nil, service.ErrPostNotFound
		},
	}
	h := NewCommentHandler(svc)

	body := strings.NewReader(`{"text":"nice one"}`)
	rec := doAuthedRequest(h.Add, "POST /{username}/{postID}/comment/", http.MethodPost, "/leo/404/comment/", body, "user:2", "sonya", false)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
