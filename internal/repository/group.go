package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

// GroupRepository handles group data access
type GroupRepository struct {
	db database.Database
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		CREATE group CONTENT {
			title: $title,
			slug: $slug,
			description: $description
		}
	`

	vars := map[string]interface{}{
		"title":       group.Title,
		"slug":        group.Slug,
		"description": group.Description,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: group slug already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result, "")
	if err != nil {
		return err
	}

	group.ID = created.ID
	return nil
}

// GetByID retrieves a group by ID. Returns nil without error when no group exists.
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseGroupRow(result), nil
}

// GetBySlug retrieves a group by its URL slug. Returns nil without error when
// no group exists.
func (r *GroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `SELECT * FROM group WHERE slug = $slug LIMIT 1`
	vars := map[string]interface{}{"slug": slug}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseGroupRow(result), nil
}

// List retrieves all groups ordered by title
func (r *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `SELECT * FROM group ORDER BY title ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := extractQueryRows(result)
	groups := make([]*model.Group, 0, len(rows))
	for _, row := range rows {
		if g := parseGroupRowMap(row); g != nil {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

// Delete removes a group. Posts referencing it keep existing with their
// group link cleared by the schema event.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

func parseGroupRow(result interface{}) *model.Group {
	row, ok := extractRow(result)
	if !ok {
		return nil
	}
	return parseGroupRowMap(row)
}

func parseGroupRowMap(row map[string]interface{}) *model.Group {
	if row == nil {
		return nil
	}
	return &model.Group{
		ID:          convertSurrealID(row["id"]),
		Title:       getString(row, "title"),
		Slug:        getString(row, "slug"),
		Description: getString(row, "description"),
	}
}
