package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogpost/pkg/apperrors"
)

func TestAuthorize_Owner(t *testing.T) {
	target := Target{Resource: ResourcePost, OwnerID: "author-1"}

	for _, action := range []Action{ActionUpdate, ActionDelete, ActionPublish, ActionUnpublish, ActionUpload} {
		assert.NoError(t, Authorize("author-1", action, target), string(action))

		err := Authorize("other", action, target)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied), string(action))
	}
}

func TestAuthorize_Anonymous(t *testing.T) {
	err := Authorize("", ActionDelete, Target{Resource: ResourcePost, OwnerID: "author-1"})

	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestAuthorize_CommentModerationRequiresPostAuthor(t *testing.T) {
	target := Target{Resource: ResourceComment, OwnerID: "commenter", PostAuthorID: "post-author"}

	assert.NoError(t, Authorize("post-author", ActionApprove, target))
	assert.NoError(t, Authorize("post-author", ActionDisapprove, target))

	err := Authorize("commenter", ActionApprove, target)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	assert.Equal(t, "only the post author can moderate comments", apperrors.MessageOf(err))
}

func TestAuthorize_CommentEditRequiresCommentAuthor(t *testing.T) {
	target := Target{Resource: ResourceComment, OwnerID: "commenter", PostAuthorID: "post-author"}

	assert.NoError(t, Authorize("commenter", ActionUpdate, target))
	assert.Error(t, Authorize("post-author", ActionDelete, target))
}

func TestAuthorize_LikeDelete(t *testing.T) {
	target := Target{Resource: ResourceLike, OwnerID: "liker"}

	assert.NoError(t, Authorize("liker", ActionDelete, target))
	err := Authorize("someone", ActionDelete, target)
	assert.Equal(t, "you can only delete your own likes", apperrors.MessageOf(err))
}

func TestAuthorize_ViewStats(t *testing.T) {
	target := Target{Resource: ResourcePost, OwnerID: "author-1"}

	assert.NoError(t, Authorize("author-1", ActionViewStats, target))
	err := Authorize("reader", ActionViewStats, target)
	assert.Equal(t, "you can only view statistics of your own posts", apperrors.MessageOf(err))
}

func TestAuthorize_UnknownRuleDenied(t *testing.T) {
	err := Authorize("liker", ActionPublish, Target{Resource: ResourceLike, OwnerID: "liker"})

	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestCanViewPost(t *testing.T) {
	assert.True(t, CanViewPost("", "a", true, false))
	assert.False(t, CanViewPost("", "a", false, false))
	assert.True(t, CanViewPost("a", "a", false, false))
	assert.False(t, CanViewPost("b", "a", false, false))
	assert.False(t, CanViewPost("a", "a", true, true))
}

func TestCanViewComment(t *testing.T) {
	assert.True(t, CanViewComment("", "a", true, false))
	assert.False(t, CanViewComment("", "a", false, false))
	assert.True(t, CanViewComment("a", "a", false, false))
	assert.False(t, CanViewComment("a", "a", true, true))
}
