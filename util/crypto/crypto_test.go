package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"))
	assert.NotContains(t, hash, "hunter2")

	// Same password hashes differently thanks to the random salt
	other, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash(hash, "correct horse battery staple"))
	assert.False(t, CheckPasswordHash(hash, "correct horse battery stapler"))
	assert.False(t, CheckPasswordHash(hash, ""))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("", "secret"))
	assert.False(t, CheckPasswordHash("not-a-hash", "secret"))
	assert.False(t, CheckPasswordHash("bcrypt:x$aa$bb", "secret"))
	assert.False(t, CheckPasswordHash("pbkdf2:sha256:zero$aa$bb", "secret"))
}
