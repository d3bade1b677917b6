package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/validation"
	commentHTTP "blogpost/services/comment/internal/controller/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the real route table. Every request below is
// rejected before it reaches the use case, so none is wired in.
func newTestRouter(t *testing.T, ratePerMinute int) (*gin.Engine, *jwt.Service) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	jwtService := jwt.NewService("test-secret")
	handler := commentHTTP.NewCommentHandler(nil, logger.NewWithWriter(io.Discard, "error"))

	r := gin.New()
	registerRoutes(r, jwtService, nil, ratePerMinute, handler)
	return r, jwtService
}

func do(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:5555"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_RateLimitIsPerUserBehindSharedIP(t *testing.T) {
	r, jwtService := newTestRouter(t, 1)
	alice, err := jwtService.GenerateToken("user-a", "user")
	require.NoError(t, err)
	bob, err := jwtService.GenerateToken("user-b", "user")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, do(t, r, "POST", "/api/v1/comments", alice).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, "POST", "/api/v1/comments", bob).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, "POST", "/api/v1/comments", alice).Code)
}

func TestRoutes_AnonymousCallersShareIPBudget(t *testing.T) {
	r, _ := newTestRouter(t, 1)

	assert.Equal(t, http.StatusBadRequest, do(t, r, "GET", "/api/v1/comments?post=abc", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, r, "GET", "/api/v1/comments?post=abc", "").Code)
}

func TestRoutes_MalformedIDIsNotFound(t *testing.T) {
	r, jwtService := newTestRouter(t, 100)
	token, err := jwtService.GenerateToken("user-a", "user")
	require.NoError(t, err)

	cases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/comments/abc"},
		{"PUT", "/api/v1/comments/1%27%20OR%201=1"},
		{"DELETE", "/api/v1/comments/42"},
		{"POST", "/api/v1/comments/not-a-uuid/reply"},
		{"POST", "/api/v1/comments/abc/approve"},
	}
	for _, tc := range cases {
		w := do(t, r, tc.method, tc.path, token)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
		assert.Contains(t, w.Body.String(), `"code":"not_found"`)
	}
}

func TestRoutes_MalformedIDBeforeAuth(t *testing.T) {
	r, _ := newTestRouter(t, 100)

	assert.Equal(t, http.StatusNotFound, do(t, r, "DELETE", "/api/v1/comments/abc", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, "DELETE", "/api/v1/comments/3f8a1c52-2b7e-4c1a-9d0e-5a6b7c8d9e0f", "").Code)
}
