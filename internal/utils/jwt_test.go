package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice@x.com", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.NotEmpty(t, tok.JTI)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	// Each token gets a fresh jti.
	tok2, err := NewAccessToken(testSecret, "alice@x.com", 60)
	require.NoError(t, err)
	assert.NotEqual(t, tok.JTI, tok2.JTI)
}

func TestParseAccessToken(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice@x.com", 60)
	require.NoError(t, err)

	claims, err := ParseAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Subject)
	assert.Equal(t, tok.JTI, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, tok.Exp.Unix(), claims.ExpiresAt.Unix())
}

func TestParseAccessTokenMalformed(t *testing.T) {
	_, err := ParseAccessToken(testSecret, "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice@x.com", 60)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", tok.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice@x.com", -1)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, tok.Token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
