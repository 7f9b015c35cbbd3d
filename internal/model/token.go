package model

// TokenManager issues and validates session tokens.
type TokenManager interface {
	// Generate signs a token carrying the subject and timestamp claims.
	Generate(subject string) (string, error)

	// Parse validates the token signature and expiry and returns the
	// subject claim.
	Parse(token string) (string, error)
}
