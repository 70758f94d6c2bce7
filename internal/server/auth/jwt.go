// Package auth issues and validates the API's bearer tokens and hashes
// user passwords.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set: the standard claims (subject = username,
// expiry, issued-at) plus the token kind, so an access token can never be
// used as a refresh token and vice versa.
type Claims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
}

// Signer issues and validates HMAC-signed JWTs.
type Signer struct {
	secretKey []byte
	method    jwt.SigningMethod
	now       func() time.Time
}

// NewSigner returns a Signer for one of HS256, HS384 or HS512.
func NewSigner(secretKey string, algorithm string) (*Signer, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if secretKey == "" {
		return nil, fmt.Errorf("secret key must not be empty")
	}
	return &Signer{secretKey: []byte(secretKey), method: method, now: time.Now}, nil
}

// GenerateToken signs a token of the given kind for subject, valid for
// validityDuration from now. NumericDate has whole-second precision, so exp
// is rounded up and the token never expires before now+validityDuration.
func (s *Signer) GenerateToken(subject string, kind string, validityDuration time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(validityDuration))),
		},
		Kind: kind,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ceilSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Second)
}

// GetSubjectFromToken verifies signature, algorithm, expiry and kind and
// returns the subject. Every failure is reported as common.ErrInvalidToken:
// callers cannot tell an expired token from a forged one.
func (s *Signer) GetSubjectFromToken(tokenString string, kind string) (string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Kind != kind || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
