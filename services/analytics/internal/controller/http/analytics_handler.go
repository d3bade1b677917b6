package http

import (
	"net/http"

	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/analytics/internal/entity"
	"blogpost/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostCountsResponse struct {
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
	Deleted   int64 `json:"deleted"`
}

type AuthorStatsResponse struct {
	AuthorID         string             `json:"author_id"`
	Posts            PostCountsResponse `json:"posts"`
	LikesReceived    int64              `json:"likes_received"`
	CommentsReceived int64              `json:"comments_received"`
	RepliesReceived  int64              `json:"replies_received"`
	PendingComments  int64              `json:"pending_comments"`
}

type PostStatsResponse struct {
	PostID          string `json:"post_id"`
	IsPublished     bool   `json:"is_published"`
	LikesCount      int64  `json:"likes_count"`
	CommentsCount   int64  `json:"comments_count"`
	RepliesCount    int64  `json:"replies_count"`
	PendingComments int64  `json:"pending_comments"`
}

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

// GetMyStats godoc
// @Summary      Author statistics
// @Description  Post counts by state and engagement received on the caller's posts. Deleted posts are left out of engagement totals.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AuthorStatsResponse
// @Failure      401  {object}  map[string]string
// @Router       /analytics/me [get]
func (h *AnalyticsHandler) GetMyStats(c *gin.Context) {
	stats, err := h.analyticsUseCase.AuthorStats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthorStatsResponse(stats))
}

// GetPostStats godoc
// @Summary      Post statistics
// @Description  Only the post author may read them, drafts included
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path string true "Post ID"
// @Success      200  {object}  PostStatsResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /analytics/posts/{post_id} [get]
func (h *AnalyticsHandler) GetPostStats(c *gin.Context) {
	stats, err := h.analyticsUseCase.PostStats(c.Request.Context(), middleware.UserID(c), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, PostStatsResponse{
		PostID:          stats.PostID,
		IsPublished:     stats.IsPublished,
		LikesCount:      stats.Likes,
		CommentsCount:   stats.Comments,
		RepliesCount:    stats.Replies,
		PendingComments: stats.Pending,
	})
}

func toAuthorStatsResponse(s *entity.AuthorStats) AuthorStatsResponse {
	return AuthorStatsResponse{
		AuthorID: s.AuthorID,
		Posts: PostCountsResponse{
			Published: s.Posts.Published,
			Drafts:    s.Posts.Drafts,
			Deleted:   s.Posts.Deleted,
		},
		LikesReceived:    s.Likes,
		CommentsReceived: s.Comments,
		RepliesReceived:  s.Replies,
		PendingComments:  s.Pending,
	}
}
