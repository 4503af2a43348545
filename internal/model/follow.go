package model

import "time"

// Follow is a directed edge meaning "follower receives the author's posts
// in their aggregated feed". At most one edge exists per ordered
// (follower, author) pair, and a user never follows themself; both rules
// are enforced in the follow service and backed by a unique index.
type Follow struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	AuthorID   string    `json:"author_id"`
	CreatedOn  time.Time `json:"created_on"`
}
