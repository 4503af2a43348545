package model

// Group represents a topical community that posts can be published into.
// Groups are created by administrators and are read-only for everyone else.
// Removing a group never removes its posts; they keep a null group instead.
type Group struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Group constraints
const (
	MaxGroupTitleLength = 200
	MaxGroupSlugLength  = 50
)

// CreateGroupRequest represents a request to create a group
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Validate checks group fields and returns field errors for the form
func (r *CreateGroupRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if len(r.Title) > MaxGroupTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title exceeds maximum length"})
	}
	if !validSlug(r.Slug) {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must be lowercase letters, digits, and hyphens"})
	}
	return errs
}

// validSlug reports whether s is a usable URL slug.
func validSlug(s string) bool {
	if s == "" || len(s) > MaxGroupSlugLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
