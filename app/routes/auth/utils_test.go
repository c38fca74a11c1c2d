package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "prod@agency.test", "Pavel Producer", "producer")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "prod@agency.test", claims.Email)
	assert.Equal(t, "Pavel Producer", claims.FullName)
	assert.Equal(t, "producer", claims.Role)
	assert.Equal(t, "model-agency", claims.Issuer)
}

func TestValidateJWT_Tampered(t *testing.T) {
	token, err := GenerateJWT(7, "prod@agency.test", "Pavel Producer", "producer")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}
