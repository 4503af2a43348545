package model

import "time"

// Comment represents a reader response attached to a post. Comments are
// never edited or deleted by the application; they only disappear when the
// owning post is deleted, via the cascade rule in the schema.
type Comment struct {
	ID       string    `json:"id"`
	PostID   string    `json:"post_id"`
	AuthorID string    `json:"author_id"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
}

// CommentView is a comment decorated with author information.
type CommentView struct {
	Comment Comment     `json:"comment"`
	Author  UserSummary `json:"author"`
}

// Comment constraints
const MaxCommentTextLength = 3000

// CommentForm carries the user-editable comment fields.
type CommentForm struct {
	Text string `json:"text"`
}

// Validate checks comment fields and returns field errors for the form
func (f *CommentForm) Validate() []FieldError {
	var errs []FieldError
	if f.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "text is required"})
	}
	if len(f.Text) > MaxCommentTextLength {
		errs = append(errs, FieldError{Field: "text", Message: "text exceeds maximum length"})
	}
	return errs
}
