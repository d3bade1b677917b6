package persistent

import (
	"context"
	"testing"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/database/dbtest"
	"blogpost/pkg/softdelete"
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_CreateAndDuplicate(t *testing.T) {
	db := dbtest.New(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)

	like := &entity.Like{UserID: alice, PostID: postID}
	require.NoError(t, repo.Create(ctx, like))
	require.NotEmpty(t, like.ID)
	require.NotNil(t, like.User)
	assert.Equal(t, "alice", like.User.Username)

	err := repo.Create(ctx, &entity.Like{UserID: alice, PostID: postID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	count, err := repo.Count(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikeRepository_DeleteReportsRemoval(t *testing.T) {
	db := dbtest.New(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	require.NoError(t, repo.Create(ctx, &entity.Like{UserID: alice, PostID: postID}))

	removed, err := repo.Delete(ctx, alice, postID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, alice, postID)
	require.NoError(t, err)
	assert.False(t, removed)

	exists, err := repo.Exists(ctx, alice, postID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeRepository_DeleteByIDIsHard(t *testing.T) {
	db := dbtest.New(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	like := &entity.Like{UserID: alice, PostID: postID}
	require.NoError(t, repo.Create(ctx, like))

	removed, err := repo.DeleteByID(ctx, like.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var rows int64
	require.NoError(t, db.Model(&model.LikeModel{}).Count(&rows).Error)
	assert.Zero(t, rows)

	_, err = repo.GetByID(ctx, like.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLikeRepository_ListFiltersAndHidesDeletedPosts(t *testing.T) {
	db := dbtest.New(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	kept := dbtest.SeedPost(t, db, alice, "kept", true)
	gone := dbtest.SeedPost(t, db, alice, "gone", true)

	require.NoError(t, repo.Create(ctx, &entity.Like{UserID: alice, PostID: kept}))
	require.NoError(t, repo.Create(ctx, &entity.Like{UserID: bob, PostID: kept}))
	require.NoError(t, repo.Create(ctx, &entity.Like{UserID: bob, PostID: gone}))

	_, err := softdelete.Mark(db, &model.PostModel{}, gone, time.Now())
	require.NoError(t, err)

	_, total, err := repo.List(ctx, entity.LikeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	byBob, total, err := repo.List(ctx, entity.LikeFilter{UserID: bob})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, kept, byBob[0].PostID)
	assert.Equal(t, "bob", byBob[0].User.Username)

	count, err := repo.Count(ctx, gone)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostRepository_GetPost(t *testing.T) {
	db := dbtest.New(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	_, err := softdelete.Mark(db, &model.PostModel{}, postID, time.Now())
	require.NoError(t, err)

	post, err := repo.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.True(t, post.IsDeleted())
	assert.False(t, post.Likeable())

	_, err = repo.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
