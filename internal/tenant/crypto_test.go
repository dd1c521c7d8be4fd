package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	require.Nil(t, err)

	assert.True(t, checkPassword("correct horse battery staple", hash))
	assert.False(t, checkPassword("wrong password", hash))
	assert.False(t, checkPassword("correct horse battery staple", "not-a-hash"))

	// Same password, fresh salt, different hash
	other, err := hashPassword("correct horse battery staple")
	require.Nil(t, err)
	assert.NotEqual(t, hash, other)
}
