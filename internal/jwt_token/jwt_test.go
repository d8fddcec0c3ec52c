package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "dematkyc/pkg/domain-errors"
)

var jwtService = NewJWTService("test-signing-key", "brokerage-auth", "dematkyc")

func Test_GenerateAndValidate(t *testing.T) {
	token, err := jwtService.GenerateAccessToken("op-42", "maker", time.Hour)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-42", claims.Subject)
	assert.Equal(t, "maker", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_ValidateToken_Rejections(t *testing.T) {
	expired, err := jwtService.GenerateAccessToken("op-42", "maker", -time.Hour)
	require.NoError(t, err)

	otherAudience, err := NewJWTService("test-signing-key", "brokerage-auth", "someone-else").
		GenerateAccessToken("op-42", "maker", time.Hour)
	require.NoError(t, err)

	wrongKey, err := NewJWTService("other-key", "brokerage-auth", "dematkyc").
		GenerateAccessToken("op-42", "maker", time.Hour)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "op-42"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwtService.GenerateAccessToken("", "maker", time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":        "invalid-token-string",
		"expired":        expired,
		"wrong audience": otherAudience,
		"wrong key":      wrongKey,
		"alg none":       noneAlg,
		"no subject":     noSubject,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jwtService.ValidateToken(token)
			require.Error(t, err)
			assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
		})
	}
}

func Test_Adapter(t *testing.T) {
	token, err := jwtService.GenerateAccessToken("op-7", "checker", time.Hour)
	require.NoError(t, err)

	claims, err := NewJWTServiceAdapter(jwtService).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-7", claims.OperatorID)
	assert.Equal(t, "checker", claims.Role)
}
