package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("student-1", "student", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := ExtractActorFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", id)
	assert.Equal(t, "student", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("student-1", "student", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractActorFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractActorFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
