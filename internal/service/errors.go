package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidUsername    = errors.New("invalid username")
)

// ===== Group Errors =====
var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrGroupSlugExists  = errors.New("a group with this slug already exists")
	ErrNotAdmin         = errors.New("not authorized to perform this action")
	ErrInvalidGroupSlug = errors.New("invalid group slug")
)

// ===== Post Errors =====
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("not the author of this post")
	ErrEmptyText     = errors.New("text is required")
	ErrTextTooLong   = errors.New("text exceeds maximum length")
)

// ===== Follow Errors =====
var (
	ErrAuthorNotFound = errors.New("author not found")
)

// ===== Media Errors =====
var (
	ErrMediaDisabled    = errors.New("media uploads are disabled")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image exceeds maximum size")
)
