package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yatube/api/internal/middleware"
	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/service"
)

// AuthService defines the auth operations the handler needs
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*service.AuthResult, error)
	Login(ctx context.Context, req model.LoginRequest) (*service.AuthResult, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
}

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	authService  AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie controls the
// Secure attribute on the session cookie and should be true in production.
func NewAuthHandler(authService AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// SessionResponse describes an established session
type SessionResponse struct {
	Token     string            `json:"token"`
	TokenType string            `json:"token_type"`
	ExpiresIn int               `json:"expires_in"`
	User      model.UserSummary `json:"user"`
}

// Signup handles POST /auth/signup/
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	result, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	h.setSessionCookie(w, result)
	WriteData(w, http.StatusCreated, toSessionResponse(result), map[string]string{
		"self": "/auth/me",
	})
}

// Login handles POST /auth/login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	h.setSessionCookie(w, result)

	// Form logins carry a next parameter pointing back at the page that
	// demanded authentication
	if next := safeNextPath(r.URL.Query().Get("next")); next != "" {
		http.Redirect(w, r, next, http.StatusFound)
		return
	}

	WriteData(w, http.StatusOK, toSessionResponse(result), map[string]string{
		"self": "/auth/me",
	})
}

// Logout handles POST /auth/logout/. Sessions are stateless JWTs, so logout
// just clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	WriteNoContent(w)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, map[string]string{
		"self":    "/auth/me",
		"profile": "/" + user.Username + "/",
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, result *service.AuthResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(result.ExpiresIn / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func toSessionResponse(result *service.AuthResult) SessionResponse {
	return SessionResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresIn: int(result.ExpiresIn / time.Second),
		User:      result.User.Summary(),
	}
}

// safeNextPath accepts only same-site absolute paths as redirect targets
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if _, err := url.Parse(next); err != nil {
		return ""
	}
	return next
}
