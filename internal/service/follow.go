package service

import (
	"context"
	"errors"

	"github.com/yatube/api/internal/database"
)

// FollowRepository defines the interface for follow edge storage
type FollowRepository interface {
	FollowReader
	Create(ctx context.Context, followerID, authorID string) error
	Delete(ctx context.Context, followerID, authorID string) error
}

// FollowService handles follow and unfollow operations. Both operations are
// idempotent: repeating one never errors and never creates a second edge.
// A self-follow request is silently ignored.
type FollowService struct {
	followRepo FollowRepository
	userRepo   UserDirectory
}

// FollowServiceConfig holds configuration for the follow service
type FollowServiceConfig struct {
	FollowRepo FollowRepository
	UserRepo   UserDirectory
}

// NewFollowService creates a new follow service
func NewFollowService(cfg FollowServiceConfig) *FollowService {
	return &FollowService{
		followRepo: cfg.FollowRepo,
		userRepo:   cfg.UserRepo,
	}
}

// Follow makes followerID follow the author named by username
func (s *FollowService) Follow(ctx context.Context, followerID, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrAuthorNotFound
	}

	// Self-follow requests succeed without creating an edge
	if author.ID == followerID {
		return nil
	}

	exists, err := s.followRepo.Exists(ctx, followerID, author.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.followRepo.Create(ctx, followerID, author.ID); err != nil {
		// A concurrent request may have created the edge first
		if errors.Is(err, database.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}

// Unfollow removes followerID's follow of the author named by username
func (s *FollowService) Unfollow(ctx context.Context, followerID, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrAuthorNotFound
	}

	if author.ID == followerID {
		return nil
	}

	return s.followRepo.Delete(ctx, followerID, author.ID)
}
