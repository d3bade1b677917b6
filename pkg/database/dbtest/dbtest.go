// Package dbtest opens throwaway in-memory databases carrying the full
// schema from pkg/models, for repository tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blogpost/pkg/models"
)

// New returns a gorm handle on a fresh in-memory SQLite database. The pool is
// pinned to a single connection because every new connection to ":memory:"
// would otherwise see an empty database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// SeedUser inserts an active user and returns its id.
func SeedUser(t testing.TB, db *gorm.DB, username string) string {
	t.Helper()
	user := &models.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "hashed",
		Role:     models.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

// SeedPost inserts a post by authorID and returns its id.
func SeedPost(t testing.TB, db *gorm.DB, authorID, slug string, published bool) string {
	t.Helper()
	post := &models.Post{
		Title:       slug,
		Slug:        slug,
		Content:     "content of " + slug,
		AuthorID:    authorID,
		IsPublished: published,
	}
	require.NoError(t, db.Create(post).Error)
	return post.ID
}
