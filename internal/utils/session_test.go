package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(userID uint) SessionClaims {
	return SessionClaims{UserID: userID, RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, expires, err := IssueSessionToken(42, "secret")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expires, time.Minute)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Len(t, claims.ID, 36)
	assert.Equal(t, expires.Unix(), claims.ExpiresAt.Unix())

	other, _, err := IssueSessionToken(42, "secret")
	require.NoError(t, err)
	assert.NotEqual(t, token, other) // distinct jti per login
}

func TestParseSessionTokenRejects(t *testing.T) {
	good, _, err := IssueSessionToken(1, "secret")
	require.NoError(t, err)

	expired := validClaims(1)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	foreign := validClaims(1)
	foreign.Issuer = "someone-else"

	noExpiry := validClaims(1)
	noExpiry.ExpiresAt = nil

	mismatched := validClaims(2) // subject still says 1

	cases := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret":     {good, "other"},
		"expired":          {sign(t, jwt.SigningMethodHS256, []byte("secret"), expired), "secret"},
		"foreign issuer":   {sign(t, jwt.SigningMethodHS256, []byte("secret"), foreign), "secret"},
		"no expiry":        {sign(t, jwt.SigningMethodHS256, []byte("secret"), noExpiry), "secret"},
		"subject mismatch": {sign(t, jwt.SigningMethodHS256, []byte("secret"), mismatched), "secret"},
		"other hmac":       {sign(t, jwt.SigningMethodHS512, []byte("secret"), validClaims(1)), "secret"},
		"none algorithm":   {sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims(1)), "secret"},
		"garbage":          {"not-a-jwt", "secret"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSessionToken(tc.token, tc.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = ParseSessionToken(sign(t, jwt.SigningMethodHS256, []byte("secret"), validClaims(1)), "secret")
	assert.NoError(t, err)
}
