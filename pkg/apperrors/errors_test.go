package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByKind(t *testing.T) {
	err := NotFound("post not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrPermissionDenied))
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get post: %w", PermissionDenied("you can only delete your own posts"))

	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.Equal(t, KindPermissionDenied, KindOf(err))
	assert.Equal(t, "you can only delete your own posts", MessageOf(err))
}

func TestKind_HTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:       http.StatusBadRequest,
		KindPermissionDenied: http.StatusForbidden,
		KindNotFound:         http.StatusNotFound,
		KindConflict:         http.StatusConflict,
		KindUnauthorized:     http.StatusUnauthorized,
		KindInternal:         http.StatusInternalServerError,
	}

	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus(), string(kind))
	}
}

func TestInternal_KeepsCauseButMasksMessage(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal("failed to load post", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "failed to load post", MessageOf(err))
}

func TestForeignErrors(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal error", MessageOf(err))
}
