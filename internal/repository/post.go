package repository

import (
	"context"
	"errors"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

// PostRepository handles post data access. Feed queries share a single
// ordering: newest publication date first, with the record ID as a stable
// tie-break so pagination never shows a post twice.
type PostRepository struct {
	db database.Database
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		CREATE post CONTENT {
			text: $text,
			author: type::record($author),
			group: IF $group IS NOT NULL THEN type::record($group) ELSE NONE END,
			image: IF $image IS NOT NULL THEN $image ELSE NONE END,
			pub_date: time::now()
		}
	`

	vars := map[string]interface{}{
		"text":   post.Text,
		"author": post.AuthorID,
		"group":  ptrOrNil(post.GroupID),
		"image":  ptrOrNil(post.Image),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result, "pub_date")
	if err != nil {
		return err
	}

	post.ID = created.ID
	post.PubDate = created.CreatedOn
	return nil
}

// GetByID retrieves a post by ID. Returns nil without error when no post exists.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := extractRow(result)
	if !ok {
		return nil, nil
	}
	return parsePostRow(row), nil
}

// Update rewrites a post's editable fields. The publication date and author
// never change.
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE type::record($id) SET
			text = $text,
			group = IF $group IS NOT NULL THEN type::record($group) ELSE NONE END,
			image = IF $image IS NOT NULL THEN $image ELSE NONE END
	`

	vars := map[string]interface{}{
		"id":    post.ID,
		"text":  post.Text,
		"group": ptrOrNil(post.GroupID),
		"image": ptrOrNil(post.Image),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a post. Its comments are removed by the schema cascade event.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// ListAll retrieves a page of all posts, newest first
func (r *PostRepository) ListAll(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	query := `
		SELECT * FROM post
		ORDER BY pub_date DESC, id DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{"limit": limit, "offset": offset}

	return r.listPosts(ctx, query, vars)
}

// CountAll counts all posts
func (r *PostRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM post GROUP ALL`
	return r.countPosts(ctx, query, nil)
}

// ListByGroup retrieves a page of a group's posts, newest first
func (r *PostRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*model.Post, error) {
	query := `
		SELECT * FROM post
		WHERE group = type::record($group)
		ORDER BY pub_date DESC, id DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{"group": groupID, "limit": limit, "offset": offset}

	return r.listPosts(ctx, query, vars)
}

// CountByGroup counts a group's posts
func (r *PostRepository) CountByGroup(ctx context.Context, groupID string) (int, error) {
	query := `SELECT count() AS count FROM post WHERE group = type::record($group) GROUP ALL`
	return r.countPosts(ctx, query, map[string]interface{}{"group": groupID})
}

// ListByAuthor retrieves a page of an author's posts, newest first
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error) {
	query := `
		SELECT * FROM post
		WHERE author = type::record($author)
		ORDER BY pub_date DESC, id DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{"author": authorID, "limit": limit, "offset": offset}

	return r.listPosts(ctx, query, vars)
}

// CountByAuthor counts an author's posts
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	query := `SELECT count() AS count FROM post WHERE author = type::record($author) GROUP ALL`
	return r.countPosts(ctx, query, map[string]interface{}{"author": authorID})
}

// ListByAuthors retrieves a page of posts by any of the given authors,
// newest first. An empty author set yields an empty page.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]*model.Post, error) {
	if len(authorIDs) == 0 {
		return []*model.Post{}, nil
	}

	query := `
		SELECT * FROM post
		WHERE <string> author IN $authors
		ORDER BY pub_date DESC, id DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{"authors": authorIDs, "limit": limit, "offset": offset}

	return r.listPosts(ctx, query, vars)
}

// CountByAuthors counts posts by any of the given authors
func (r *PostRepository) CountByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}

	query := `SELECT count() AS count FROM post WHERE <string> author IN $authors GROUP ALL`
	return r.countPosts(ctx, query, map[string]interface{}{"authors": authorIDs})
}

func (r *PostRepository) listPosts(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Post, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryRows(result)
	posts := make([]*model.Post, 0, len(rows))
	for _, row := range rows {
		if p := parsePostRow(row); p != nil {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (r *PostRepository) countPosts(ctx context.Context, query string, vars map[string]interface{}) (int, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parsePostRow(row map[string]interface{}) *model.Post {
	if row == nil {
		return nil
	}

	post := &model.Post{
		ID:       convertSurrealID(row["id"]),
		Text:     getString(row, "text"),
		AuthorID: convertSurrealID(row["author"]),
		GroupID:  getRecordPtr(row, "group"),
		Image:    getStringPtr(row, "image"),
	}
	if t := getTime(row, "pub_date"); t != nil {
		post.PubDate = *t
	}
	return post
}
