package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yatube/api/internal/database"
	"github.com/yatube/api/internal/model"
)

func followTestUserRepo() *mockUserRepo {
	return &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			switch username {
			case "mike":
				return &model.User{ID: "user:mike", Username: "mike"}, nil
			case "anna":
				return &model.User{ID: "user:anna", Username: "anna"}, nil
			}
			return nil, nil
		},
	}
}

func TestFollowService_Follow_CreatesEdge(t *testing.T) {
	created := false
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{
			createFunc: func(ctx context.Context, followerID, authorID string) error {
				created = true
				if followerID != "user:anna" || authorID != "user:mike" {
					t.Errorf("edge = (%s, %s), want (user:anna, user:mike)", followerID, authorID)
				}
				return nil
			},
		},
		UserRepo: followTestUserRepo(),
	})

	if err := svc.Follow(context.Background(), "user:anna", "mike"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	if !created {
		t.Error("follow edge was not created")
	}
}

func TestFollowService_Follow_SelfIgnored(t *testing.T) {
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{
			createFunc: func(ctx context.Context, followerID, authorID string) error {
				t.Error("self-follow must not create an edge")
				return nil
			},
		},
		UserRepo: followTestUserRepo(),
	})

	if err := svc.Follow(context.Background(), "user:mike", "mike"); err != nil {
		t.Fatalf("Follow() error = %v, want silent success", err)
	}
}

func TestFollowService_Follow_Idempotent(t *testing.T) {
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{
			existsFunc: func(ctx context.Context, followerID, authorID string) (bool, error) {
				return true, nil
			},
			createFunc: func(ctx context.Context, followerID, authorID string) error {
				t.Error("repeat follow must not create a second edge")
				return nil
			},
		},
		UserRepo: followTestUserRepo(),
	})

	if err := svc.Follow(context.Background(), "user:anna", "mike"); err != nil {
		t.Fatalf("Follow() error = %v, want success", err)
	}
}

func TestFollowService_Follow_ConcurrentDuplicate(t *testing.T) {
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{
			createFunc: func(ctx context.Context, followerID, authorID string) error {
				return fmt.Errorf("%w: follow already exists", database.ErrDuplicate)
			},
		},
		UserRepo: followTestUserRepo(),
	})

	if err := svc.Follow(context.Background(), "user:anna", "mike"); err != nil {
		t.Fatalf("Follow() error = %v, want success when index rejects the duplicate", err)
	}
}

func TestFollowService_Follow_UnknownAuthor(t *testing.T) {
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{},
		UserRepo:   followTestUserRepo(),
	})

	err := svc.Follow(context.Background(), "user:anna", "ghost")
	if !errors.Is(err, ErrAuthorNotFound) {
		t.Errorf("Follow() error = %v, want ErrAuthorNotFound", err)
	}
}

func TestFollowService_Unfollow_Idempotent(t *testing.T) {
	deletes := 0
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{
			deleteFunc: func(ctx context.Context, followerID, authorID string) error {
				deletes++
				return nil
			},
		},
		UserRepo: followTestUserRepo(),
	})

	if err := svc.Unfollow(context.Background(), "user:anna", "mike"); err != nil {
		t.Fatalf("Unfollow() error = %v", err)
	}
	if err := svc.Unfollow(context.Background(), "user:anna", "mike"); err != nil {
		t.Fatalf("repeat Unfollow() error = %v, want success", err)
	}
	if deletes != 2 {
		t.Errorf("deletes = %d, want 2", deletes)
	}
}

func TestFollowService_Unfollow_UnknownAuthor(t *testing.T) {
	svc := NewFollowService(FollowServiceConfig{
		FollowRepo: &mockFollowRepo{},
		UserRepo:   followTestUserRepo(),
	})

	err := svc.Unfollow(context.Background(), "user:anna", "ghost")
	if !errors.Is(err, ErrAuthorNotFound) {
		t.Errorf("Unfollow() error = %v, want ErrAuthorNotFound", err)
	}
}
