package model

import "time"

// Post represents a text publication. The author is required and immutable;
// the group is optional and becomes null if the group is ever removed. The
// publication date is set once at creation and never changes, even on edit.
type Post struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
	AuthorID string    `json:"author_id"`
	GroupID  *string   `json:"group_id,omitempty"`
	Image    *string   `json:"image,omitempty"` // Public URL of the stored image
}

// PostView is a post decorated with display information for feed pages.
type PostView struct {
	Post   Post        `json:"post"`
	Author UserSummary `json:"author"`
	Group  *Group      `json:"group,omitempty"`
}

// Post constraints
const MaxPostTextLength = 10000

// PostForm carries the user-editable post fields. The image arrives as
// multipart form data and is resolved to a URL before the form reaches the
// service layer.
type PostForm struct {
	Text      string  `json:"text"`
	GroupSlug *string `json:"group,omitempty"`
	Image     *string `json:"image,omitempty"`
}

// Validate checks post fields and returns field errors for the form
func (f *PostForm) Validate() []FieldError {
	var errs []FieldError
	if f.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "text is required"})
	}
	if len(f.Text) > MaxPostTextLength {
		errs = append(errs, FieldError{Field: "text", Message: "text exceeds maximum length"})
	}
	return errs
}

// AuthorProfile bundles the aggregate counts shown on a profile page.
// Following reports whether the requesting user follows this author; it is
// always false for anonymous requesters.
type AuthorProfile struct {
	Author         UserSummary `json:"author"`
	PostCount      int         `json:"post_count"`
	FollowerCount  int         `json:"follower_count"`
	FollowingCount int         `json:"following_count"`
	Following      bool        `json:"following"`
}
