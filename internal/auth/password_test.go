package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // minimum cost keeps the test fast

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "pw1"},
		{name: "long password", password: "correct horse battery staple"},
		{name: "unicode password", password: "sénha-ültra-sëcreta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash, "hash must not be the plaintext")
			assert.True(t, hasher.Verify(tt.password, hash))
			assert.False(t, hasher.Verify(tt.password+"x", hash))
		})
	}
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)

	h1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ by salt")
	assert.True(t, hasher.Verify("same-password", h1))
	assert.True(t, hasher.Verify("same-password", h2))
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(4)

	assert.False(t, hasher.Verify("pw1", ""))
	assert.False(t, hasher.Verify("pw1", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("pw1", "$2a$garbage"))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs must not break hashing.
	for _, cost := range []int{-1, 0, 99} {
		hasher := NewPasswordHasher(cost)
		hash, err := hasher.Hash("pw1")
		assert.NoError(t, err)
		assert.True(t, hasher.Verify("pw1", hash))
	}
}
