package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatube/api/internal/database"
)

// FollowRepository handles follow edge data access. A unique index on the
// (follower, author) pair keeps duplicate edges out even under concurrent
// requests.
type FollowRepository struct {
	db database.Database
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db database.Database) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create creates a follow edge from follower to author
func (r *FollowRepository) Create(ctx context.Context, followerID, authorID string) error {
	query := `
		CREATE follow CONTENT {
			follower: type::record($follower),
			author: type::record($author),
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"follower": followerID,
		"author":   authorID,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: follow already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Delete removes the follow edge from follower to author, if any
func (r *FollowRepository) Delete(ctx context.Context, followerID, authorID string) error {
	query := `
		DELETE follow
		WHERE follower = type::record($follower) AND author = type::record($author)
	`
	vars := map[string]interface{}{
		"follower": followerID,
		"author":   authorID,
	}

	return r.db.Execute(ctx, query, vars)
}

// Exists reports whether follower follows author
func (r *FollowRepository) Exists(ctx context.Context, followerID, authorID string) (bool, error) {
	query := `
		SELECT id FROM follow
		WHERE follower = type::record($follower) AND author = type::record($author)
		LIMIT 1
	`
	vars := map[string]interface{}{
		"follower": followerID,
		"author":   authorID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	_, ok := extractRow(result)
	return ok, nil
}

// ListAuthorIDs retrieves the IDs of every author the follower follows
func (r *FollowRepository) ListAuthorIDs(ctx context.Context, followerID string) ([]string, error) {
	query := `SELECT author FROM follow WHERE follower = type::record($follower)`
	vars := map[string]interface{}{"follower": followerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryRows(result)
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := convertSurrealID(row["author"]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// CountFollowers counts how many users follow the author
func (r *FollowRepository) CountFollowers(ctx context.Context, authorID string) (int, error) {
	query := `SELECT count() AS count FROM follow WHERE author = type::record($author) GROUP ALL`
	return r.countFollows(ctx, query, map[string]interface{}{"author": authorID})
}

// CountFollowing counts how many authors the user follows
func (r *FollowRepository) CountFollowing(ctx context.Context, followerID string) (int, error) {
	query := `SELECT count() AS count FROM follow WHERE follower = type::record($follower) GROUP ALL`
	return r.countFollows(ctx, query, map[string]interface{}{"follower": followerID})
}

func (r *FollowRepository) countFollows(ctx context.Context, query string, vars map[string]interface{}) (int, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}
