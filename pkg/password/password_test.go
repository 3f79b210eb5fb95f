package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256HasherIsDeterministic(t *testing.T) {
	h := SHA256Hasher{}

	first, err := h.Hash("hunter2")
	require.NoError(t, err)
	second, err := h.Hash("hunter2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, "hunter2", first)
	assert.Len(t, first, 64) // hex-encoded 32-byte digest

	assert.True(t, h.Compare(first, "hunter2"))
	assert.False(t, h.Compare(first, "hunter3"))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: 4} // minimum cost, keeps the test fast

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, h.Compare(hash, "hunter2"))
	assert.False(t, h.Compare(hash, "hunter3"))
}

func TestNewSelectsAlgorithm(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = New("sha256")
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = New("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = New("md5")
	require.Error(t, err)
}
