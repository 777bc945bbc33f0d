package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIssuer = Issuer{Secret: "test-secret", Issuer: "nodebook-local", Audience: "nodebook-app"}

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := testIssuer.CreateToken("device-1", time.Hour)
	require.NoError(t, err)

	subject, err := testIssuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "device-1", subject)
}

func TestVerifyTokenRejects(t *testing.T) {
	token, err := testIssuer.CreateToken("device-1", time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := testIssuer
		other.Secret = "another-secret"
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := testIssuer
		other.Audience = "someone-else"
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := testIssuer
		other.Issuer = "someone-else"
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "device-1",
			Issuer:    testIssuer.Issuer,
			Audience:  jwt.ClaimStrings{testIssuer.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}).SignedString([]byte(testIssuer.Secret))
		require.NoError(t, err)

		_, err = testIssuer.VerifyToken(expired)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := testIssuer.VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestNoSecret(t *testing.T) {
	_, err := Issuer{}.CreateToken("device-1", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = Issuer{}.VerifyToken("x")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestDefaultTTL(t *testing.T) {
	token, err := testIssuer.CreateToken("device-1", 0)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, time.Minute)
}
