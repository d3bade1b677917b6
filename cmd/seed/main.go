package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogpost/pkg/cache"
	"blogpost/pkg/config"
	"blogpost/pkg/database"
	"blogpost/pkg/logger"
	"blogpost/pkg/models"
	"blogpost/pkg/slug"
	"blogpost/pkg/softdelete"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "password123"

type seedUser struct {
	email    string
	username string
	role     models.UserRole
}

type seedPost struct {
	title     string
	author    string
	category  string
	tags      []string
	published bool
	deleted   bool
}

var (
	seedUsers = []seedUser{
		{"admin@test.com", "admin", models.RoleAdmin},
		{"alice@test.com", "alice", models.RoleUser},
		{"bob@test.com", "bob", models.RoleUser},
		{"charlie@test.com", "charlie", models.RoleUser},
	}

	seedCategories = []string{"Engineering", "Databases", "Culture"}

	seedTags = map[string]string{
		"go":       "#00add8",
		"postgres": "#336791",
		"redis":    "#dc382d",
		"testing":  "#28a745",
	}

	seedPosts = []seedPost{
		{"Structuring a Go service", "alice", "Engineering", []string{"go", "testing"}, true, false},
		{"Soft deletes without surprises", "alice", "Databases", []string{"postgres"}, true, false},
		{"Caching counters in Redis", "bob", "Engineering", []string{"redis", "go"}, true, false},
		{"Notes on code review", "bob", "Culture", nil, false, false},
		{"An abandoned draft", "charlie", "Culture", nil, true, true},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, cached like counts are left as they are: %v", err)
		redisClient = nil
	}

	if err := seedDatabase(context.Background(), db, redisClient, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, redisClient *redis.Client, log *logger.Logger) error {
	db = db.WithContext(ctx)

	userIDs, err := seedAccounts(db, log)
	if err != nil {
		return err
	}

	categoryIDs, err := seedCategoryRows(db)
	if err != nil {
		return err
	}

	tags, err := seedTagRows(db)
	if err != nil {
		return err
	}

	for _, p := range seedPosts {
		post, created, err := seedPostRow(db, p, userIDs, categoryIDs, tags)
		if err != nil {
			return fmt.Errorf("seed post %q: %w", p.title, err)
		}
		if !created {
			log.Info("Post %s already exists, skipping", post.Slug)
			continue
		}
		log.Info("Created post: %s by %s", post.Title, p.author)

		if !p.published || p.deleted {
			continue
		}
		if err := seedDiscussion(db, post, userIDs); err != nil {
			return fmt.Errorf("seed discussion on %q: %w", p.title, err)
		}
		if redisClient != nil {
			redisClient.Del(ctx, fmt.Sprintf("post:likes:%s", post.ID))
		}
	}

	return nil
}

func seedAccounts(db *gorm.DB, log *logger.Logger) (map[string]string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ids := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		var existing models.User
		err := db.Where("email = ? OR username = ?", u.email, u.username).First(&existing).Error
		if err == nil {
			log.Info("User %s already exists, skipping", u.username)
			ids[u.username] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user := &models.User{
			Email:    u.email,
			Username: u.username,
			Password: string(hashedPassword),
			Role:     u.role,
			IsActive: true,
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user %s: %w", u.username, err)
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		ids[u.username] = user.ID
	}
	return ids, nil
}

func seedCategoryRows(db *gorm.DB) (map[string]string, error) {
	ids := make(map[string]string, len(seedCategories))
	for _, name := range seedCategories {
		category := models.Category{Name: name, Slug: slug.Make(name)}
		if err := db.Where(models.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			return nil, fmt.Errorf("create category %s: %w", name, err)
		}
		ids[name] = category.ID
	}
	return ids, nil
}

func seedTagRows(db *gorm.DB) (map[string]models.Tag, error) {
	tags := make(map[string]models.Tag, len(seedTags))
	for name, color := range seedTags {
		tag := models.Tag{Name: name, Slug: slug.Make(name), Color: color}
		if err := db.Where(models.Tag{Slug: tag.Slug}).FirstOrCreate(&tag).Error; err != nil {
			return nil, fmt.Errorf("create tag %s: %w", name, err)
		}
		tags[name] = tag
	}
	return tags, nil
}

func seedPostRow(db *gorm.DB, p seedPost, userIDs, categoryIDs map[string]string, tags map[string]models.Tag) (*models.Post, bool, error) {
	postSlug := slug.Make(p.title)

	var existing models.Post
	err := db.Scopes(softdelete.All).Where("slug = ?", postSlug).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	categoryID := categoryIDs[p.category]
	post := &models.Post{
		Title:       p.title,
		Slug:        postSlug,
		Content:     fmt.Sprintf("%s. Seeded content written by %s.", p.title, p.author),
		AuthorID:    userIDs[p.author],
		CategoryID:  &categoryID,
		IsPublished: p.published,
	}
	for _, name := range p.tags {
		post.Tags = append(post.Tags, tags[name])
	}
	if err := db.Create(post).Error; err != nil {
		return nil, false, err
	}

	if p.deleted {
		if _, err := softdelete.Mark(db, &models.Post{}, post.ID, time.Now()); err != nil {
			return nil, false, err
		}
	}
	return post, true, nil
}

// seedDiscussion adds an approved thread, one comment awaiting approval and
// likes from every other user.
func seedDiscussion(db *gorm.DB, post *models.Post, userIDs map[string]string) error {
	var commenters []string
	for _, u := range seedUsers {
		if id := userIDs[u.username]; id != post.AuthorID && u.role == models.RoleUser {
			commenters = append(commenters, id)
		}
	}
	if len(commenters) == 0 {
		return nil
	}

	top := &models.Comment{
		Content:    "Great write-up, thanks for sharing.",
		AuthorID:   commenters[0],
		PostID:     post.ID,
		IsApproved: true,
	}
	if err := db.Create(top).Error; err != nil {
		return err
	}

	reply := &models.Comment{
		Content:    "Glad it helped!",
		AuthorID:   post.AuthorID,
		PostID:     post.ID,
		ParentID:   &top.ID,
		IsApproved: true,
	}
	if err := db.Create(reply).Error; err != nil {
		return err
	}

	pending := &models.Comment{
		Content:  "Check out my blog for more on this.",
		AuthorID: commenters[len(commenters)-1],
		PostID:   post.ID,
	}
	if err := db.Create(pending).Error; err != nil {
		return err
	}
	// is_approved defaults to true at the column level.
	if err := db.Model(pending).Update("is_approved", false).Error; err != nil {
		return err
	}

	for _, userID := range commenters {
		like := &models.Like{UserID: userID, PostID: post.ID}
		if err := db.Create(like).Error; err != nil && !database.IsUniqueViolation(err) {
			return err
		}
	}
	return nil
}
