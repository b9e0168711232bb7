package utils

import (
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping
	"strconv" // Subject encoding
	"time"    // Token lifetime

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token ids
)

const (
	TokenTTL    = 24 * time.Hour       // How long a session token stays valid
	TokenIssuer = "retirement-planner" // iss claim on every session token
	clockSkew   = 30 * time.Second     // Tolerated drift between issuer and verifier
)

// ErrInvalidToken wraps every reason a session token is refused
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims identify the signed-in user. The subject repeats the user id
// so tokens from other issuers sharing the secret are not accepted.
type SessionClaims struct {
	UserID               uint `json:"uid"` // Account id
	jwt.RegisteredClaims      // iss, sub, exp, iat, jti
}

// IssueSessionToken signs an HS256 session token for userID and returns it
// with its expiry
func IssueSessionToken(userID uint, secret string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(TokenTTL)
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(), // Unique per login
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires, nil
}

// ParseSessionToken verifies signature, algorithm, issuer and expiry and
// returns the claims. All failures match ErrInvalidToken.
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, fmt.Errorf("%w: subject does not match user", ErrInvalidToken)
	}
	return claims, nil
}
