package auth

import (
	"testing"

	"shelf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password123", first))
	assert.True(t, hasher.Check("password123", second))
}

func TestBcryptHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("password123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password123", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
