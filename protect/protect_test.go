package protect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valentin-kaiser/hwident/protect"
)

func TestSaltedHashRoundTrip(t *testing.T) {
	hashed, err := protect.SaltedHash("4CE0460D0F66B4F3", nil)
	require.NoError(t, err)

	assert.Len(t, hashed, 128)
	assert.Equal(t, strings.ToUpper(hashed), hashed)
	assert.True(t, protect.VerifySaltedHash("4CE0460D0F66B4F3", hashed))
	assert.False(t, protect.VerifySaltedHash("different input", hashed))
}

func TestSaltedHashRandomSaltDiffers(t *testing.T) {
	first, err := protect.SaltedHash("same input", nil)
	require.NoError(t, err)
	second, err := protect.SaltedHash("same input", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, protect.VerifySaltedHash("same input", first))
	assert.True(t, protect.VerifySaltedHash("same input", second))
}

func TestSaltedHashExplicitSaltIsDeterministic(t *testing.T) {
	salt := make([]byte, 32)
	for i := range salt {
		salt[i] = byte(i)
	}

	first, err := protect.SaltedHash("input", salt)
	require.NoError(t, err)
	second, err := protect.SaltedHash("input", salt)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// the provided salt must come back out unchanged
	assert.Equal(t, strings.ToUpper("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"), first[:64])
}

func TestSaltedHashDoesNotMutateSalt(t *testing.T) {
	salt := make([]byte, 32)
	original := make([]byte, 32)
	copy(original, salt)

	_, err := protect.SaltedHash("input", salt)
	require.NoError(t, err)
	assert.Equal(t, original, salt)
}

func TestVerifySaltedHashFailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty", hashed: ""},
		{name: "not hex", hashed: strings.Repeat("ZZ", 64)},
		{name: "odd length", hashed: strings.Repeat("A", 127)},
		{name: "shorter than the salt", hashed: strings.Repeat("AB", 16)},
		{name: "salt only", hashed: strings.Repeat("AB", 32)},
		{name: "truncated digest", hashed: strings.Repeat("AB", 48)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, protect.VerifySaltedHash("input", tt.hashed))
			})
		})
	}
}

func TestVerifySaltedHashIsCaseSensitive(t *testing.T) {
	hashed, err := protect.SaltedHash("input", nil)
	require.NoError(t, err)

	assert.False(t, protect.VerifySaltedHash("input", strings.ToLower(hashed)))
}

func TestProtectedID(t *testing.T) {
	first, err := protect.ProtectedID("app-one", "4CE0460D0F66B4F3")
	require.NoError(t, err)
	second, err := protect.ProtectedID("app-two", "4CE0460D0F66B4F3")
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)

	repeat, err := protect.ProtectedID("app-one", "4CE0460D0F66B4F3")
	require.NoError(t, err)
	assert.Equal(t, first, repeat)

	_, err = protect.ProtectedID("app-one", "")
	assert.Error(t, err)
}

func TestMayContainPII(t *testing.T) {
	assert.False(t, protect.MayContainPII("4CE0460D0F66B4F3"))
	assert.False(t, protect.MayContainPII(""))
}
