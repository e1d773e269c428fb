package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotContains(t, hash, "correct horse")

	ok, err := Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("Tr0ub4dor&3", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("hunter2")
	require.NoError(t, err)
	b, err := Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashRejectsEmpty(t *testing.T) {
	_, err := Hash("")
	assert.Error(t, err)
}

func TestVerifyMalformedHash(t *testing.T) {
	_, err := Verify("hunter2", "not-an-argon2-hash")
	assert.Error(t, err)
}
