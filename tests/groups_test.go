package tests

/*
FEATURE: Community Group Management
DOMAIN: Groups

ACCEPTANCE CRITERIA:
===================

AC-GROUP-001: Create Group
  GIVEN an administrator
  WHEN they create a group with a title and slug
  THEN the group is stored and retrievable by slug
  AND duplicate slugs are rejected

AC-GROUP-002: Slug Validation
  GIVEN a group form
  WHEN the slug contains invalid characters or the title is missing
  THEN creation is rejected

AC-GROUP-003: Group Removal Detaches Posts
  GIVEN a group with posts
  WHEN the group is removed
  THEN the posts survive without a group
*/

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/internal/repository"
	"github.com/yatube/api/internal/service"
	"github.com/yatube/api/internal/testing/fixtures"
	"github.com/yatube/api/internal/testing/helpers"
	"github.com/yatube/api/internal/testing/testdb"
)

func createGroupService(tdb *testdb.TestDB) *service.GroupService {
	return service.NewGroupService(service.GroupServiceConfig{
		GroupRepo: repository.NewGroupRepository(tdb.DB),
	})
}

func TestGroup_Create(t *testing.T) {
	// AC-GROUP-001: Create Group
	tdb := testdb.New(t)
	defer tdb.Close()

	groupService := createGroupService(tdb)
	ctx := context.Background()

	group, err := groupService.Create(ctx, model.CreateGroupRequest{
		Title:       "Technology",
		Slug:        "tech",
		Description: "Hardware and software",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "tech", group.Slug)

	found, err := groupService.GetBySlug(ctx, "tech")
	require.NoError(t, err)
	assert.Equal(t, group.ID, found.ID)

	_, err = groupService.Create(ctx, model.CreateGroupRequest{
		Title: "Also Technology",
		Slug:  "tech",
	})
	assert.ErrorIs(t, err, service.ErrGroupSlugExists)
}

func TestGroup_SlugValidation(t *testing.T) {
	// AC-GROUP-002: Slug Validation
	tdb := testdb.New(t)
	defer tdb.Close()

	groupService := createGroupService(tdb)
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.CreateGroupRequest
	}{
		{"bad slug characters", model.CreateGroupRequest{Title: "Valid", Slug: "no spaces!"}},
		{"empty title", model.CreateGroupRequest{Title: "", Slug: "valid-slug"}},
		{"empty slug", model.CreateGroupRequest{Title: "Valid", Slug: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := groupService.Create(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestGroup_RemovalDetachesPosts(t *testing.T) {
	// AC-GROUP-003: Group Removal Detaches Posts
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	groupRepo := repository.NewGroupRepository(tdb.DB)
	postRepo := repository.NewPostRepository(tdb.DB)
	ctx := context.Background()

	author := f.CreateUser(t)
	group := f.CreateGroup(t)
	post := f.CreatePost(t, author, fixtures.InGroup(group))

	require.NoError(t, groupRepo.Delete(ctx, group.ID))

	helpers.AssertRecordNotExists(t, tdb.DB, "group", group.ID)
	helpers.AssertRecordExists(t, tdb.DB, "post", post.ID)

	survivor, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Nil(t, survivor.GroupID)
}
