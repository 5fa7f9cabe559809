package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	raw, hash, err := NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, raw, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, raw, hash)
	assert.Equal(t, HashSessionToken(raw), hash)

	raw2, _, err := NewSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestHashSessionToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashSessionToken("abc"), HashSessionToken("abc"))
	assert.NotEqual(t, HashSessionToken("abc"), HashSessionToken("abd"))
}
