package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	role := user.Role
	if role == "" {
		role = model.UserRoleUser
	}

	query := `
		CREATE user CONTENT {
			username: $username,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			role: $role,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"username": user.Username,
		"hash":     ptrOrNil(user.Hash),
		"role":     role,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result, "created_on")
	if err != nil {
		return err
	}

	user.ID = created.ID
	user.CreatedOn = created.CreatedOn
	user.Role = role
	return nil
}

// GetByID retrieves a user by ID. Returns nil without error when no user exists.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserRow(result)
}

// GetByUsername retrieves a user by username. Returns nil without error when
// no user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserRow(result)
}

// GetSummaries retrieves username summaries for a set of user IDs
func (r *UserRepository) GetSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error) {
	summaries := make(map[string]model.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	query := `SELECT id, username FROM user WHERE <string> id IN $ids`
	vars := map[string]interface{}{"ids": ids}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	for _, row := range extractQueryRows(result) {
		id := convertSurrealID(row["id"])
		if id == "" {
			continue
		}
		summaries[id] = model.UserSummary{
			ID:       id,
			Username: getString(row, "username"),
		}
	}
	return summaries, nil
}

// RecordLogin stamps the user's last login time
func (r *UserRepository) RecordLogin(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET login_on = time::now()`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// UpdatePassword updates a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, hash string) error {
	query := `UPDATE type::record($id) SET hash = $hash`
	vars := map[string]interface{}{
		"id":   userID,
		"hash": hash,
	}

	return r.db.Execute(ctx, query, vars)
}

// SetRole updates a user's role
func (r *UserRepository) SetRole(ctx context.Context, userID string, role model.UserRole) error {
	query := `UPDATE type::record($id) SET role = $role`
	vars := map[string]interface{}{
		"id":   userID,
		"role": role,
	}

	return r.db.Execute(ctx, query, vars)
}

func parseUserRow(result interface{}) (*model.User, error) {
	row, ok := extractRow(result)
	if !ok {
		return nil, nil
	}

	user := &model.User{
		ID:       convertSurrealID(row["id"]),
		Username: getString(row, "username"),
		Hash:     getStringPtr(row, "hash"),
		Role:     model.UserRole(getString(row, "role")),
		LoginOn:  getTime(row, "login_on"),
	}
	if t := getTime(row, "created_on"); t != nil {
		user.CreatedOn = *t
	}
	return user, nil
}
