package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/metrics"
	"blogpost/pkg/policy"
	"blogpost/pkg/s3"
	"blogpost/pkg/slug"
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	postCacheTTL     = 10 * time.Minute
	maxSlugAttempts  = 50
	maxImageSize     = 5 << 20
	slugTakenMessage = "a post with this slug already exists"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID string, input entity.CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID, viewerID string) (*entity.Post, error)
	ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error)
	ListMyPosts(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error)
	AdminListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error)
	UpdatePost(ctx context.Context, postID, callerID string, input entity.UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, postID, callerID string) error
	PublishPost(ctx context.Context, postID, callerID string) (*entity.Post, error)
	UnpublishPost(ctx context.Context, postID, callerID string) (*entity.Post, error)
	UploadImage(ctx context.Context, postID, callerID string, file *multipart.FileHeader) (*entity.Post, error)
}

type postUseCase struct {
	postRepo     persistent.PostRepository
	taxonomyRepo persistent.TaxonomyRepository
	storage      s3.Uploader
	redisClient  *redis.Client
	logger       *logger.Logger
	now          func() time.Time
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	taxonomyRepo persistent.TaxonomyRepository,
	storage s3.Uploader,
	redisClient *redis.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:     postRepo,
		taxonomyRepo: taxonomyRepo,
		storage:      storage,
		redisClient:  redisClient,
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID string, input entity.CreatePostInput) (*entity.Post, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	title, err := nonBlank("title", input.Title)
	if err != nil {
		return nil, err
	}
	content, err := nonBlank("content", input.Content)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != nil && *input.CategoryID == "" {
		input.CategoryID = nil
	}
	if err := uc.checkTaxonomy(ctx, input.CategoryID, input.TagIDs); err != nil {
		return nil, err
	}

	postSlug := strings.TrimSpace(input.Slug)
	if postSlug == "" {
		postSlug, err = uc.generateSlug(ctx, title)
	} else {
		err = uc.checkSlug(ctx, postSlug, "")
	}
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:       title,
		Slug:        postSlug,
		Content:     content,
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		IsPublished: input.IsPublished,
	}

	if err := uc.postRepo.Create(ctx, post, dedupe(input.TagIDs)); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Validation(slugTakenMessage)
		}
		uc.logger.Error("Failed to create post: %v", err)
		return nil, apperrors.Internal("failed to create post", err)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.Post, error) {
	post, err := uc.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewPost(viewerID, post.AuthorID, post.IsPublished, post.IsDeleted()) {
		return nil, apperrors.NotFound("post not found")
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error) {
	filter.IgnoreVisibility = false
	filter.IncludeDeleted = false
	return uc.list(ctx, filter)
}

func (uc *postUseCase) ListMyPosts(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, int64, error) {
	if authorID == "" {
		return nil, 0, apperrors.Unauthorized("authentication required")
	}
	return uc.list(ctx, entity.PostFilter{
		ViewerID: authorID,
		AuthorID: authorID,
		Limit:    limit,
		Offset:   offset,
	})
}

// AdminListPosts is the include-all read path; role checks happen in the
// router.
func (uc *postUseCase) AdminListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error) {
	filter.IgnoreVisibility = true
	return uc.list(ctx, filter)
}

func (uc *postUseCase) list(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error) {
	posts, total, err := uc.postRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, 0, apperrors.Internal("failed to list posts", err)
	}
	return posts, total, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, postID, callerID string, input entity.UpdatePostInput) (*entity.Post, error) {
	post, err := uc.authorizedPost(ctx, postID, callerID, policy.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if post.Title, err = nonBlank("title", *input.Title); err != nil {
			return nil, err
		}
	}
	if input.Content != nil {
		if post.Content, err = nonBlank("content", *input.Content); err != nil {
			return nil, err
		}
	}
	if input.Slug != nil {
		newSlug := strings.TrimSpace(*input.Slug)
		if newSlug == "" {
			return nil, apperrors.Validation("slug must not be blank")
		}
		if newSlug != post.Slug {
			if err := uc.checkSlug(ctx, newSlug, post.ID); err != nil {
				return nil, err
			}
			post.Slug = newSlug
		}
	}
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}

	var tagIDs *[]string
	if input.TagIDs != nil {
		ids := dedupe(*input.TagIDs)
		tagIDs = &ids
	}
	var categoryID *string
	if input.CategoryID != nil && !input.ClearCategory {
		categoryID = input.CategoryID
	}
	var checkTags []string
	if tagIDs != nil {
		checkTags = *tagIDs
	}
	if err := uc.checkTaxonomy(ctx, categoryID, checkTags); err != nil {
		return nil, err
	}
	switch {
	case input.ClearCategory:
		post.CategoryID = nil
	case categoryID != nil:
		post.CategoryID = categoryID
	}

	post.UpdatedAt = uc.now()
	if err := uc.postRepo.Update(ctx, post, tagIDs); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			return nil, apperrors.Validation(slugTakenMessage)
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, apperrors.Internal("failed to update post", err)
	}

	uc.invalidate(ctx, postID)
	return post, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, postID, callerID string) error {
	if _, err := uc.authorizedPost(ctx, postID, callerID, policy.ActionDelete); err != nil {
		return err
	}

	deleted, err := uc.postRepo.SoftDelete(ctx, postID, uc.now())
	if err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return apperrors.Internal("failed to delete post", err)
	}
	if !deleted {
		return apperrors.NotFound("post not found")
	}

	metrics.SoftDeletesTotal.WithLabelValues("post").Inc()
	uc.invalidate(ctx, postID)
	return nil
}

func (uc *postUseCase) PublishPost(ctx context.Context, postID, callerID string) (*entity.Post, error) {
	return uc.setPublished(ctx, postID, callerID, true)
}

func (uc *postUseCase) UnpublishPost(ctx context.Context, postID, callerID string) (*entity.Post, error) {
	return uc.setPublished(ctx, postID, callerID, false)
}

func (uc *postUseCase) setPublished(ctx context.Context, postID, callerID string, published bool) (*entity.Post, error) {
	action := policy.ActionPublish
	if !published {
		action = policy.ActionUnpublish
	}

	if _, err := uc.authorizedPost(ctx, postID, callerID, action); err != nil {
		return nil, err
	}

	if err := uc.postRepo.SetPublished(ctx, postID, published); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to %s post %s: %v", action, postID, err)
		return nil, apperrors.Internal(fmt.Sprintf("failed to %s post", action), err)
	}

	uc.invalidate(ctx, postID)
	return uc.reload(ctx, postID)
}

func (uc *postUseCase) UploadImage(ctx context.Context, postID, callerID string, file *multipart.FileHeader) (*entity.Post, error) {
	if _, err := uc.authorizedPost(ctx, postID, callerID, policy.ActionUpload); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.Validation("image file is required")
	}
	if file.Size > maxImageSize {
		return nil, apperrors.Validation("image must not exceed 5MB")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.Validation("file must be an image")
	}
	if uc.storage == nil {
		return nil, apperrors.Internal("image storage is not configured", nil)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Validation("failed to read uploaded file")
	}
	defer src.Close()

	url, err := uc.storage.Upload(ctx, s3.ObjectKey("posts", postID, file.Filename), src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload image for post %s: %v", postID, err)
		return nil, apperrors.Internal("failed to upload image", err)
	}

	if err := uc.postRepo.SetImageURL(ctx, postID, url); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to save image url for post %s: %v", postID, err)
		return nil, apperrors.Internal("failed to save image", err)
	}

	uc.invalidate(ctx, postID)
	return uc.reload(ctx, postID)
}

// authorizedPost loads a non-deleted post and checks the caller against the
// rule for action. Existing posts owned by someone else yield
// PermissionDenied, never NotFound.
func (uc *postUseCase) authorizedPost(ctx context.Context, postID, callerID string, action policy.Action) (*entity.Post, error) {
	if callerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}

	target := policy.Target{Resource: policy.ResourcePost, OwnerID: post.AuthorID}
	if err := policy.Authorize(callerID, action, target); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) reload(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}
	return post, nil
}

func (uc *postUseCase) repoError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	uc.logger.Error("%s: %v", msg, err)
	return apperrors.Internal(msg, err)
}

func (uc *postUseCase) checkSlug(ctx context.Context, postSlug, excludeID string) error {
	if !slug.Valid(postSlug) {
		return apperrors.Validation("slug must contain only letters, numbers, underscores or hyphens")
	}
	exists, err := uc.postRepo.SlugExists(ctx, postSlug, excludeID)
	if err != nil {
		return uc.repoError(err, "failed to check slug")
	}
	if exists {
		return apperrors.Validation(slugTakenMessage)
	}
	return nil
}

// generateSlug derives a slug from the title and appends -2, -3, ... until
// it is free.
func (uc *postUseCase) generateSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "post"
	}
	if len(base) > slug.MaxLength-4 {
		base = strings.TrimRight(base[:slug.MaxLength-4], "-_")
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		exists, err := uc.postRepo.SlugExists(ctx, candidate, "")
		if err != nil {
			return "", uc.repoError(err, "failed to check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", apperrors.Validation(slugTakenMessage)
}

func (uc *postUseCase) checkTaxonomy(ctx context.Context, categoryID *string, tagIDs []string) error {
	if categoryID != nil && *categoryID != "" {
		exists, err := uc.taxonomyRepo.CategoryExists(ctx, *categoryID)
		if err != nil {
			return uc.repoError(err, "failed to check category")
		}
		if !exists {
			return apperrors.Validation("category does not exist")
		}
	}

	ids := dedupe(tagIDs)
	if len(ids) == 0 {
		return nil
	}
	count, err := uc.taxonomyRepo.CountTags(ctx, ids)
	if err != nil {
		return uc.repoError(err, "failed to check tags")
	}
	if count != int64(len(ids)) {
		return apperrors.Validation("one or more tags do not exist")
	}
	return nil
}

func (uc *postUseCase) loadPost(ctx context.Context, postID string) (*entity.Post, error) {
	if post := uc.cachedPost(ctx, postID); post != nil {
		return post, nil
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}

	uc.cachePost(ctx, post)
	return post, nil
}

func postCacheKey(postID string) string {
	return "post:" + postID
}

func (uc *postUseCase) cachedPost(ctx context.Context, postID string) *entity.Post {
	if uc.redisClient == nil {
		return nil
	}

	data, err := uc.redisClient.Get(ctx, postCacheKey(postID)).Bytes()
	if err != nil {
		return nil
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		uc.logger.Warn("Failed to decode cached post %s: %v", postID, err)
		return nil
	}
	return &post
}

func (uc *postUseCase) cachePost(ctx context.Context, post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(ctx, postCacheKey(post.ID), data, postCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache post %s: %v", post.ID, err)
	}
}

func (uc *postUseCase) invalidate(ctx context.Context, postID string) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(ctx, postCacheKey(postID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate cached post %s: %v", postID, err)
	}
}

func nonBlank(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.Validation(field + " must not be blank")
	}
	return trimmed, nil
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
