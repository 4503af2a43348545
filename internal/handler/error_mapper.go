package handler

import (
	"errors"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotAdmin):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrAuthorNotFound):
		return model.NewNotFoundError("author")
	case errors.Is(err, service.ErrGroupNotFound):
		return model.NewNotFoundError("group")
	case errors.Is(err, service.ErrPostNotFound):
		return model.NewNotFoundError("post")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrGroupSlugExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrEmptyText):
		return model.NewValidationError([]model.FieldError{{Field: "text", Message: err.Error()}})
	case errors.Is(err, service.ErrTextTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "text", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidUsername):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidGroupSlug):
		return model.NewValidationError([]model.FieldError{{Field: "slug", Message: err.Error()}})
	case errors.Is(err, service.ErrUnsupportedImage),
		errors.Is(err, service.ErrImageTooLarge):
		return model.NewValidationError([]model.FieldError{{Field: "image", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("an unexpected error occurred")
	}
}
