package model

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleUser  UserRole = "user"  // Default role
	UserRoleAdmin UserRole = "admin" // Can create and edit groups
)

// User represents a user account. The core treats users as external
// identities: it reads them to resolve authors and requesters but only the
// auth subsystem ever creates or mutates them.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Hash      *string    `json:"-"` // Never expose password hash
	Role      UserRole   `json:"role"`
	CreatedOn time.Time  `json:"created_on"`
	LoginOn   *time.Time `json:"login_on,omitempty"`
}

// IsAdmin returns true if the user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// UserSummary provides minimal user info for display
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Summary converts a User to its display representation
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

// Username constraints mirror the signup form limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 150
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// SignupRequest represents the signup endpoint request body
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks signup fields and returns field errors for the form
func (r *SignupRequest) Validate() []FieldError {
	var errs []FieldError
	if len(r.Username) < MinUsernameLength {
		errs = append(errs, FieldError{Field: "username", Message: "username is too short"})
	}
	if len(r.Username) > MaxUsernameLength {
		errs = append(errs, FieldError{Field: "username", Message: "username is too long"})
	}
	if len(r.Password) < MinPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if len(r.Password) > MaxPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at most 128 characters"})
	}
	return errs
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
