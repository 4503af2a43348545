package service

import (
	"context"
	"errors"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

// GroupRepository defines the interface for group storage
type GroupRepository interface {
	GroupReader
	Create(ctx context.Context, group *model.Group) error
	List(ctx context.Context) ([]*model.Group, error)
}

// GroupService handles thematic groups. Groups are curated: only admins
// create them, regular users just publish into them.
type GroupService struct {
	groupRepo GroupRepository
}

// GroupServiceConfig holds configuration for the group service
type GroupServiceConfig struct {
	GroupRepo GroupRepository
}

// NewGroupService creates a new group service
func NewGroupService(cfg GroupServiceConfig) *GroupService {
	return &GroupService{groupRepo: cfg.GroupRepo}
}

// Create adds a new group. The caller must already be authorized as admin.
func (s *GroupService) Create(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, ErrInvalidGroupSlug
	}

	existing, err := s.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGroupSlugExists
	}

	group := &model.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrGroupSlugExists
		}
		return nil, err
	}
	return group, nil
}

// GetBySlug retrieves a group by its URL slug
func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// List retrieves all groups
func (s *GroupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}
