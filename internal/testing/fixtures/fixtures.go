// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	author := f.CreateUser(t)
//	group := f.CreateGroup(t)
//	post := f.CreatePost(t, author, fixtures.InGroup(group))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Username string
	Password string
	Role     model.UserRole
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Username: fmt.Sprintf("user_%s", randomID()),
		Password: "testpass123",
		Role:     model.UserRoleUser,
	}
	for _, fn := range opts {
		fn(o)
	}

	// MinCost keeps fixture creation fast; real signups use a higher cost
	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	query := `
		CREATE user CONTENT {
			username: $username,
			hash: $hash,
			role: $role,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"username": o.Username,
		"hash":     string(hash),
		"role":     string(o.Role),
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.User{
		ID:        getString(data, "id"),
		Username:  getString(data, "username"),
		Role:      model.UserRole(getString(data, "role")),
		CreatedOn: getTime(data, "created_on"),
	}
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Role = model.UserRoleAdmin
	})
}

// WithUsername sets the username on a user fixture
func WithUsername(username string) func(*UserOpts) {
	return func(o *UserOpts) { o.Username = username }
}

// WithPassword sets the password on a user fixture
func WithPassword(password string) func(*UserOpts) {
	return func(o *UserOpts) { o.Password = password }
}

// ============================================================================
// Group Fixtures
// ============================================================================

// GroupOpts customizes group creation
type GroupOpts struct {
	Title       string
	Slug        string
	Description string
}

// CreateGroup creates a group with optional customizations
func (f *Factory) CreateGroup(t *testing.T, opts ...func(*GroupOpts)) *model.Group {
	t.Helper()

	id := randomID()
	o := &GroupOpts{
		Title:       fmt.Sprintf("Group %s", id),
		Slug:        fmt.Sprintf("group-%s", id),
		Description: "Test group description",
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE group CONTENT {
			title: $title,
			slug: $slug,
			description: $description
		}
	`
	results, err := f.db.Query(ctx(), query, map[string]interface{}{
		"title":       o.Title,
		"slug":        o.Slug,
		"description": o.Description,
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create group: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.Group{
		ID:          getString(data, "id"),
		Title:       getString(data, "title"),
		Slug:        getString(data, "slug"),
		Description: getString(data, "description"),
	}
}

// WithSlug sets the slug on a group fixture
func WithSlug(slug string) func(*GroupOpts) {
	return func(o *GroupOpts) { o.Slug = slug }
}

// ============================================================================
// Post Fixtures
// ============================================================================

// PostOpts customizes post creation
type PostOpts struct {
	Text    string
	Group   *model.Group
	Image   *string
	PubDate *time.Time
}

// CreatePost creates a post by the given author
func (f *Factory) CreatePost(t *testing.T, author *model.User, opts ...func(*PostOpts)) *model.Post {
	t.Helper()

	o := &PostOpts{
		Text: fmt.Sprintf("Post text %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	var groupID interface{}
	if o.Group != nil {
		groupID = o.Group.ID
	}
	var pubDate interface{}
	if o.PubDate != nil {
		pubDate = o.PubDate.UTC().Format(time.RFC3339Nano)
	}

	query := `
		CREATE post CONTENT {
			text: $text,
			author: type::record($author),
			group: IF $group IS NOT NULL THEN type::record($group) ELSE NONE END,
			image: IF $image IS NOT NULL THEN $image ELSE NONE END,
			pub_date: IF $pub_date IS NOT NULL THEN <datetime> $pub_date ELSE time::now() END
		}
	`
	vars := map[string]interface{}{
		"text":     o.Text,
		"author":   author.ID,
		"group":    groupID,
		"image":    o.Image,
		"pub_date": pubDate,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create post: %v", err)
	}

	data := extractFirstResult(t, results)
	post := &model.Post{
		ID:       getString(data, "id"),
		Text:     getString(data, "text"),
		PubDate:  getTime(data, "pub_date"),
		AuthorID: author.ID,
	}
	if o.Group != nil {
		post.GroupID = &o.Group.ID
	}
	post.Image = o.Image
	return post
}

// WithText sets the post text
func WithText(text string) func(*PostOpts) {
	return func(o *PostOpts) { o.Text = text }
}

// InGroup attaches the post to a group
func InGroup(group *model.Group) func(*PostOpts) {
	return func(o *PostOpts) { o.Group = group }
}

// PublishedAt fixes the publication date, useful for ordering tests
func PublishedAt(ts time.Time) func(*PostOpts) {
	return func(o *PostOpts) { o.PubDate = &ts }
}

// CreatePosts creates n posts by the author, each a second apart so the
// feed ordering is deterministic.
func (f *Factory) CreatePosts(t *testing.T, author *model.User, n int) []*model.Post {
	t.Helper()

	base := time.Now().UTC().Add(-time.Duration(n) * time.Second)
	posts := make([]*model.Post, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Second)
		posts = append(posts, f.CreatePost(t, author, PublishedAt(ts)))
	}
	return posts
}

// ============================================================================
// Comment Fixtures
// ============================================================================

// CreateComment creates a comment by the author on the post
func (f *Factory) CreateComment(t *testing.T, author *model.User, post *model.Post, text string) *model.Comment {
	t.Helper()

	if text == "" {
		text = fmt.Sprintf("Comment %s", randomID())
	}

	query := `
		CREATE comment CONTENT {
			post: type::record($post),
			author: type::record($author),
			text: $text,
			created: time::now()
		}
	`
	results, err := f.db.Query(ctx(), query, map[string]interface{}{
		"post":   post.ID,
		"author": author.ID,
		"text":   text,
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create comment: %v", err)
	}

	data := extractFirstResult(t, results)
	return &model.Comment{
		ID:       getString(data, "id"),
		PostID:   post.ID,
		AuthorID: author.ID,
		Text:     getString(data, "text"),
		Created:  getTime(data, "created"),
	}
}

// ============================================================================
// Follow Fixtures
// ============================================================================

// CreateFollow creates a follow edge from follower to author
func (f *Factory) CreateFollow(t *testing.T, follower, author *model.User) {
	t.Helper()

	query := `
		CREATE follow CONTENT {
			follower: type::record($follower),
			author: type::record($author),
			created_on: time::now()
		}
	`
	if _, err := f.db.Query(ctx(), query, map[string]interface{}{
		"follower": follower.ID,
		"author":   author.ID,
	}); err != nil {
		t.Fatalf("fixtures: failed to create follow: %v", err)
	}
}

// ============================================================================
// Data Extraction Helpers
// ============================================================================

func extractFirstResult(t *testing.T, results []interface{}) map[string]interface{} {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("fixtures: no results returned")
	}

	// Handle SurrealDB response wrapper
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", results[0])
	}

	result, ok := resp["result"]
	if !ok {
		t.Fatal("fixtures: no result in response")
	}

	// Handle array result
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			t.Fatal("fixtures: empty result array")
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			t.Fatalf("fixtures: unexpected array item type: %T", arr[0])
		}
		return data
	}

	// Handle single result
	data, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", result)
	}
	return data
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	// Record ID values may arrive as a struct or map instead of a string
	if v := data[key]; v != nil {
		if m, ok := v.(map[string]interface{}); ok {
			if tb, ok := m["tb"].(string); ok {
				if id := m["id"]; id != nil {
					return fmt.Sprintf("%s:%v", tb, id)
				}
			}
		}
		s := fmt.Sprintf("%v", v)
		// Convert "{table id}" to "table:id"
		if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
			inner := s[1 : len(s)-1]
			for i, c := range inner {
				if c == ' ' {
					return inner[:i] + ":" + inner[i+1:]
				}
			}
		}
		return s
	}
	return ""
}

func getTime(data map[string]interface{}, key string) time.Time {
	if v, ok := data[key].(string); ok {
		ts, _ := time.Parse(time.RFC3339Nano, v)
		return ts
	}
	return time.Time{}
}
