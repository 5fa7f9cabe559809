package auth

import (
	"testing"

	"connect/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // minimum cost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        6,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret1"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password1", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	assert.NoError(t, hasher.ValidatePasswordStrength("secret1"))

	weakPasswords := []string{
		"123",      // too short
		"abcdefg",  // no digit
		"1234567",  // no lowercase letter
		"ABCDEFG1", // no lowercase letter
	}

	for _, weak := range weakPasswords {
		assert.Error(t, hasher.ValidatePasswordStrength(weak), "expected error for weak password: %s", weak)
	}
}

func TestBcryptHasher_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}).(*bcryptHasher)

	// Only the minimum length applies without a configured policy.
	assert.NoError(t, hasher.ValidatePasswordStrength("abcdef"))
	assert.Error(t, hasher.ValidatePasswordStrength("abc"))
}
