package auth

import (
	"testing"

	"rituality/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("Sup3r-secret!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3r-secret!", hash)

	assert.True(t, hasher.Check("Sup3r-secret!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("quick")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("quick", hash))
}
