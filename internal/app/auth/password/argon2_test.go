package password

import (
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"

	customErrors "github.com/condiments/condiments-api/internal/domain/errors"
)

var cheap = &argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2idHasher_RoundTrip(t *testing.T) {
	h := NewArgon2idHasher(cheap, "")

	for _, pw := range []string{"pw1", "", "пароль", strings.Repeat("x", 512)} {
		digest, err := h.Hash(pw)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(digest, "$argon2id$"))

		ok, err := h.Verify(pw, digest)
		require.NoError(t, err)
		require.True(t, ok, "password %q must verify", pw)
	}
}

func TestArgon2idHasher_WrongPassword(t *testing.T) {
	h := NewArgon2idHasher(cheap, "")
	digest, err := h.Hash("pw1")
	require.NoError(t, err)

	ok, err := h.Verify("pw2", digest)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestArgon2idHasher_SaltPerCall(t *testing.T) {
	h := NewArgon2idHasher(cheap, "")
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestArgon2idHasher_Pepper(t *testing.T) {
	peppered := NewArgon2idHasher(cheap, "pepper")
	plain := NewArgon2idHasher(cheap, "")

	digest, err := peppered.Hash("pw")
	require.NoError(t, err)

	ok, err := plain.Verify("pw", digest)
	require.NoError(t, err)
	require.False(t, ok, "digest made with a pepper must not verify without it")

	ok, err = peppered.Verify("pw", digest)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestArgon2idHasher_MalformedDigest(t *testing.T) {
	h := NewArgon2idHasher(cheap, "")
	ok, err := h.Verify("pw", "not-a-digest")
	require.Error(t, err)
	require.False(t, ok)
	require.True(t, customErrors.IsInternal(err))
}

func TestArgon2idHasher_DefaultParams(t *testing.T) {
	h := NewArgon2idHasher(nil, "")
	require.Equal(t, DefaultParams, h.params)
}
