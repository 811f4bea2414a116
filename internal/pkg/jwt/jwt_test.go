package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret-123", 24*time.Hour)

	token, err := svc.GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := New("secret-a", 24*time.Hour)
	verifier := New("secret-b", 24*time.Hour)

	token, err := issuer.GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := New("test-secret-123", -1*time.Minute)

	token, err := svc.GenerateToken(1, "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Malformed(t *testing.T) {
	svc := New("test-secret-123", 24*time.Hour)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}
