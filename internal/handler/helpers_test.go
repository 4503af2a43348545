package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/pkg/jwt"
)

// newRequest builds a test request routed through a mux so PathValue works.
func doRequest(h http.HandlerFunc, pattern, method, target string, body io.Reader) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// doAuthedRequest is doRequest with an authenticated user in context.
func doAuthedRequest(h http.HandlerFunc, pattern, method, target string, body io.Reader, userID, username string, admin bool) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	role := "user"
	if admin {
		role = "admin"
	}
	claims := &jwt.Claims{UserID: userID, Username: username, Role: role}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UsernameKey, username)
	ctx = context.WithValue(ctx, middleware.ClaimsKey, claims)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}
