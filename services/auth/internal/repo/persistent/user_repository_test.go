package persistent

import (
	"context"
	"testing"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/database/dbtest"
	"blogpost/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email, username string) *entity.User {
	return &entity.User{
		Email:    email,
		Username: username,
		Password: "hashed",
		Role:     entity.RoleUser,
		IsActive: true,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	user := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.True(t, byID.IsActive)
	assert.Empty(t, byID.Providers)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmailIsConflict(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice@example.com", "alice")))
	err := repo.Create(ctx, newUser("alice@example.com", "alice2"))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_TakenExcludesSelf(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))
	ctx := context.Background()
	user := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Create(ctx, user))

	taken, err := repo.EmailTaken(ctx, "alice@example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "alice@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.UsernameTaken(ctx, "bob", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))
	ctx := context.Background()
	user := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Create(ctx, user))

	first := "Alice"
	require.NoError(t, repo.UpdateProfile(ctx, user.ID, entity.ProfileUpdate{FirstName: &first}))
	require.NoError(t, repo.SetAvatarURL(ctx, user.ID, "https://cdn/avatars/a.png"))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice", got.Username)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, "https://cdn/avatars/a.png", *got.AvatarURL)

	err = repo.UpdateProfile(ctx, "00000000-0000-0000-0000-000000000000", entity.ProfileUpdate{FirstName: &first})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Providers(t *testing.T) {
	repo := NewUserRepository(dbtest.New(t))
	ctx := context.Background()
	alice := newUser("alice@example.com", "alice")
	bob := newUser("bob@example.com", "bob")
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	link := &entity.AuthProvider{UserID: alice.ID, Provider: entity.ProviderGitHub, ProviderUserID: "42"}
	require.NoError(t, repo.LinkProvider(ctx, link))
	assert.NotEmpty(t, link.ID)

	err := repo.LinkProvider(ctx, &entity.AuthProvider{UserID: bob.ID, Provider: entity.ProviderGitHub, ProviderUserID: "42"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, repo.LinkProvider(ctx, &entity.AuthProvider{UserID: bob.ID, Provider: entity.ProviderGoogle, ProviderUserID: "42"}))

	links, err := repo.ListProviders(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, entity.ProviderGitHub, links[0].Provider)

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, got.Providers, 1)
}
