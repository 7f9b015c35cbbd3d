package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkazantsev/authgate/internal/model"
)

// JWT implements model.TokenManager backed by symmetric HMAC (HS256).
// Tokens are stateless: nothing is persisted server-side, so a token
// cannot be revoked before its expiry.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWT creates a token manager with the provided secret key and token
// validity window.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: []byte(secretKey), ttl: ttl}
}

var _ model.TokenManager = (*JWT)(nil)

// Generate signs a token whose subject identifies the user. Issued-at and
// expiry are whole-second timestamps; expiry is issued-at plus the
// configured window.
func (j *JWT) Generate(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the token signature and claims and returns the subject.
// Expired tokens fail validation inside ParseWithClaims.
func (j *JWT) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("token is invalid")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}
