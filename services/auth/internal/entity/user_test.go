package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvider_Valid(t *testing.T) {
	assert.True(t, ProviderDiscord.Valid())
	assert.True(t, ProviderGoogle.Valid())
	assert.True(t, ProviderGitHub.Valid())
	assert.False(t, Provider("myspace").Valid())
}

func TestProfileUpdate_Empty(t *testing.T) {
	name := "alice"
	assert.True(t, ProfileUpdate{}.Empty())
	assert.False(t, ProfileUpdate{Username: &name}.Empty())
}
