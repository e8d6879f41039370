package helperAuth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost

	hash, err := HashPassword("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, CheckPasswordHash(hash, "1234"))
	assert.False(t, CheckPasswordHash(hash, "12345"))
	assert.False(t, CheckPasswordHash(hash, ""))
	assert.False(t, CheckPasswordHash("", "1234"))
	assert.False(t, CheckPasswordHash("not-a-bcrypt-hash", "1234"))

	again, err := HashPassword("1234")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salted")
}
