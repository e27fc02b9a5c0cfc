package domain

import (
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheapCost keeps the tests fast.
var cheapCost = WithHashCost(1024, 1)

func TestArgonPasswordHasher(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		password string
		attempt  string
		valid    bool
	}

	tests := []testCase{
		{name: "matching password", password: "hunter2", attempt: "hunter2", valid: true},
		{name: "unicode password", password: "пароль-2024!", attempt: "пароль-2024!", valid: true},
		{name: "wrong password", password: "hunter2", attempt: "hunter3", valid: false},
		{name: "case matters", password: "Secret", attempt: "secret", valid: false},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hasher := NewArgonPasswordHasher(cheapCost)

			hashed, err := hasher.HashPassword(tt.password)
			require.NoError(t, err)
			assert.NotContains(t, hashed, tt.password)

			valid, err := hasher.VerifyPassword(tt.attempt, hashed)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, valid)
		})
	}

	t.Run("blank password refused", func(t *testing.T) {
		t.Parallel()

		_, err := NewArgonPasswordHasher(cheapCost).HashPassword("  ")
		assert.ErrorIs(t, err, &InvalidArgumentsError{})
	})

	t.Run("malformed hash", func(t *testing.T) {
		t.Parallel()

		_, err := NewArgonPasswordHasher(cheapCost).VerifyPassword("hunter2", "not-a-hash")
		assert.ErrorIs(t, err, argon2id.ErrInvalidHash)
	})

	t.Run("default cost is encoded in the hash", func(t *testing.T) {
		t.Parallel()

		hashed, err := NewArgonPasswordHasher().HashPassword("hunter2")
		require.NoError(t, err)

		params, _, _, err := argon2id.DecodeHash(hashed)
		require.NoError(t, err)
		assert.Equal(t, uint32(DefaultHashMemoryKiB), params.Memory)
		assert.Equal(t, uint32(DefaultHashIterations), params.Iterations)
	})
}

func TestArgonPasswordHasher_NeedsRehash(t *testing.T) {
	t.Parallel()

	cheap := NewArgonPasswordHasher(cheapCost)
	stronger := NewArgonPasswordHasher(WithHashCost(2048, 2))

	cheapHash, err := cheap.HashPassword("hunter2")
	require.NoError(t, err)
	strongHash, err := stronger.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, stronger.NeedsRehash(cheapHash))
	assert.False(t, stronger.NeedsRehash(strongHash))
	assert.False(t, cheap.NeedsRehash(strongHash))
	assert.False(t, cheap.NeedsRehash(cheapHash))
	assert.False(t, stronger.NeedsRehash("not-a-hash"))
}
