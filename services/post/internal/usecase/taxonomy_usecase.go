package usecase

import (
	"context"
	"errors"
	"strings"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/slug"
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/repo/persistent"
)

type TaxonomyUseCase interface {
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	GetTag(ctx context.Context, id string) (*entity.Tag, error)
	CreateTag(ctx context.Context, name, tagSlug, color string) (*entity.Tag, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, name, categorySlug, description string) (*entity.Category, error)
}

type taxonomyUseCase struct {
	repo   persistent.TaxonomyRepository
	logger *logger.Logger
}

func NewTaxonomyUseCase(repo persistent.TaxonomyRepository, logger *logger.Logger) TaxonomyUseCase {
	return &taxonomyUseCase{repo: repo, logger: logger}
}

func (uc *taxonomyUseCase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.logger.Error("Failed to list tags: %v", err)
		return nil, apperrors.Internal("failed to list tags", err)
	}
	return tags, nil
}

func (uc *taxonomyUseCase) GetTag(ctx context.Context, id string) (*entity.Tag, error) {
	tag, err := uc.repo.GetTag(ctx, id)
	if err != nil {
		return nil, uc.lookupError(err, "failed to load tag")
	}
	return tag, nil
}

func (uc *taxonomyUseCase) CreateTag(ctx context.Context, name, tagSlug, color string) (*entity.Tag, error) {
	name, tagSlug, err := nameAndSlug(name, tagSlug)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = entity.DefaultTagColor
	}

	tag := &entity.Tag{Name: name, Slug: tagSlug, Color: color}
	if err := uc.repo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("a tag with this name or slug already exists")
		}
		uc.logger.Error("Failed to create tag: %v", err)
		return nil, apperrors.Internal("failed to create tag", err)
	}
	return tag, nil
}

func (uc *taxonomyUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.logger.Error("Failed to list categories: %v", err)
		return nil, apperrors.Internal("failed to list categories", err)
	}
	return categories, nil
}

func (uc *taxonomyUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, uc.lookupError(err, "failed to load category")
	}
	return category, nil
}

func (uc *taxonomyUseCase) CreateCategory(ctx context.Context, name, categorySlug, description string) (*entity.Category, error) {
	name, categorySlug, err := nameAndSlug(name, categorySlug)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{Name: name, Slug: categorySlug, Description: strings.TrimSpace(description)}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("a category with this name or slug already exists")
		}
		uc.logger.Error("Failed to create category: %v", err)
		return nil, apperrors.Internal("failed to create category", err)
	}
	return category, nil
}

func (uc *taxonomyUseCase) lookupError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	uc.logger.Error("%s: %v", msg, err)
	return apperrors.Internal(msg, err)
}

func nameAndSlug(name, s string) (string, string, error) {
	name, err := nonBlank("name", name)
	if err != nil {
		return "", "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		s = slug.Make(name)
	}
	if !slug.Valid(s) {
		return "", "", apperrors.Validation("slug must contain only letters, numbers, underscores or hyphens")
	}
	return name, s, nil
}
