package persistent

import (
	"context"
	"testing"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/database/dbtest"
	"blogpost/pkg/softdelete"
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createComment(t *testing.T, repo CommentRepository, postID, authorID, content string, parentID *string, approved bool) *entity.Comment {
	t.Helper()
	comment := &entity.Comment{
		PostID:     postID,
		AuthorID:   authorID,
		Content:    content,
		ParentID:   parentID,
		IsApproved: approved,
	}
	require.NoError(t, repo.Create(context.Background(), comment))
	return comment
}

func TestCommentRepository_CreateAndGet(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)

	comment := createComment(t, repo, postID, alice, "first", nil, true)
	require.NotEmpty(t, comment.ID)
	require.NotNil(t, comment.Author)
	assert.Equal(t, "alice", comment.Author.Username)

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
	assert.True(t, got.IsApproved)
	assert.False(t, got.IsReply())
}

func TestCommentRepository_RepliesCountIgnoresDeletedChildren(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)

	parent := createComment(t, repo, postID, alice, "parent", nil, true)
	first := createComment(t, repo, postID, bob, "reply one", &parent.ID, true)
	createComment(t, repo, postID, bob, "reply two", &parent.ID, true)

	deleted, err := repo.SoftDelete(ctx, first.ID, time.Now())
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.RepliesCount)

	replies, err := repo.Replies(ctx, parent.ID, "")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "reply two", replies[0].Content)
}

func TestCommentRepository_RepliesOrderedOldestFirst(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	parent := createComment(t, repo, postID, alice, "parent", nil, true)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"b", "a", "c"} {
		reply := createComment(t, repo, postID, alice, content, &parent.ID, true)
		require.NoError(t, db.Model(&model.CommentModel{}).Where("id = ?", reply.ID).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	replies, err := repo.Replies(ctx, parent.ID, "")
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, "b", replies[0].Content)
	assert.Equal(t, "a", replies[1].Content)
	assert.Equal(t, "c", replies[2].Content)
}

func TestCommentRepository_SoftDeleteWritesOnlyDeletedAt(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	comment := createComment(t, repo, postID, alice, "bye", nil, true)

	before, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)

	deleted, err := repo.SoftDelete(ctx, comment.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, comment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, total, err := repo.List(ctx, entity.CommentFilter{PostID: postID, IgnoreVisibility: true})
	require.NoError(t, err)
	assert.Zero(t, total)

	listed, total, err := repo.List(ctx, entity.CommentFilter{PostID: postID, IgnoreVisibility: true, IncludeDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listed, 1)
	after := listed[0]
	assert.True(t, after.IsDeleted())
	assert.Equal(t, before.Content, after.Content)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))

	again, err := repo.SoftDelete(ctx, comment.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, again)
}

func TestCommentRepository_ListVisibility(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)

	createComment(t, repo, postID, alice, "approved", nil, true)
	createComment(t, repo, postID, bob, "hidden", nil, false)

	anonymous, total, err := repo.List(ctx, entity.CommentFilter{PostID: postID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, anonymous, 1)
	assert.Equal(t, "approved", anonymous[0].Content)

	_, total, err = repo.List(ctx, entity.CommentFilter{PostID: postID, ViewerID: bob})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(ctx, entity.CommentFilter{PostID: postID, IgnoreVisibility: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCommentRepository_ListHidesCommentsOfDeletedPosts(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	createComment(t, repo, postID, alice, "kept", nil, true)

	_, err := softdelete.Mark(db, &model.PostModel{}, postID, time.Now())
	require.NoError(t, err)

	_, total, err := repo.List(ctx, entity.CommentFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	var rows int64
	require.NoError(t, db.Model(&model.CommentModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestCommentRepository_ListFilters(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)

	top := createComment(t, repo, postID, alice, "Great article", nil, true)
	createComment(t, repo, postID, bob, "thanks", &top.ID, true)

	topLevel, _, err := repo.List(ctx, entity.CommentFilter{TopLevel: true})
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.Equal(t, int64(1), topLevel[0].RepliesCount)

	children, _, err := repo.List(ctx, entity.CommentFilter{ParentID: top.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "thanks", children[0].Content)

	byAuthor, _, err := repo.List(ctx, entity.CommentFilter{Search: "BOB"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)

	byContent, _, err := repo.List(ctx, entity.CommentFilter{Search: "article"})
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, top.ID, byContent[0].ID)
}

func TestCommentRepository_PendingOnOwnPosts(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	alicePost := dbtest.SeedPost(t, db, alice, "alice-post", true)
	bobPost := dbtest.SeedPost(t, db, bob, "bob-post", true)

	createComment(t, repo, alicePost, bob, "waiting", nil, false)
	createComment(t, repo, bobPost, alice, "elsewhere", nil, false)

	notApproved := false
	pending, total, err := repo.List(ctx, entity.CommentFilter{
		PostAuthorID:     alice,
		IsApproved:       &notApproved,
		IgnoreVisibility: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "waiting", pending[0].Content)
}

func TestCommentRepository_UpdateContentMarksEdited(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	comment := createComment(t, repo, postID, alice, "typo", nil, true)

	require.NoError(t, repo.UpdateContent(ctx, comment.ID, "fixed", time.Now()))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Content)
	assert.True(t, got.IsEdited)

	err = repo.UpdateContent(ctx, "missing", "x", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCommentRepository_SetApproved(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", true)
	comment := createComment(t, repo, postID, alice, "hi", nil, true)

	require.NoError(t, repo.SetApproved(ctx, comment.ID, false))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)
	assert.False(t, got.IsEdited)
}

func TestCommentRepository_GetPost(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := dbtest.SeedUser(t, db, "alice")
	postID := dbtest.SeedPost(t, db, alice, "hello", false)

	post, err := repo.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, alice, post.AuthorID)
	assert.False(t, post.IsPublished)

	_, err = repo.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
