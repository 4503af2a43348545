// Package model defines domain entities and data structures for Yatube.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across
// all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials
//   - Group: Topical community that posts can be published into
//   - Post: Text publication with optional image and group
//   - Comment: Reader response attached to a post
//   - Follow: Directed edge from a follower to a followed author
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Group struct {
//	    ID          string `json:"id"`
//	    Title       string `json:"title"`
//	    Slug        string `json:"slug"`
//	    Description string `json:"description,omitempty"`
//	}
//
// # Pagination
//
// Feeds are paginated in fixed pages of PageSize items. The Paginate
// function implements clamp-to-range page resolution; see page.go.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
