package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", hash)

	assert.NoError(t, hasher.Compare(hash, "sup3rsecret"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)
	second, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestInvalidCostFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasher(cost)

		hash, err := hasher.Hash("sup3rsecret")
		require.NoError(t, err)

		actual, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, actual)
	}
}
