package auth

import (
	"fmt"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "permissioned-registry"

// CustomClaims carries the authenticated caller.
type CustomClaims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

// Authenticator signs and verifies caller tokens with a shared HMAC key.
type Authenticator struct {
	signingKey []byte
	duration   time.Duration
}

func NewAuthenticator(signingKey string, duration time.Duration) Authenticator {
	return Authenticator{signingKey: []byte(signingKey), duration: duration}
}

// GenerateToken creates a signed JWT asserting id as the caller.
func (a Authenticator) GenerateToken(id domain.Identity) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Identity: id.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.signingKey)
}

// Authenticate parses the token and returns the caller identity it asserts.
// The identity is validated again: a token is not a way around canonicalization.
func (a Authenticator) Authenticate(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return a.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return "", errors.ErrInvalidToken
	}
	return ValidateIdentity(claims.Identity)
}
