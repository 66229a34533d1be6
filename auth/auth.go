package auth

import (
	"crypto/hmac"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid admin token")

const bearerPrefix = "Bearer "

// ValidateBearer checks an Authorization header value against the configured
// admin token. Constant-time comparison so the token can't be guessed
// byte-by-byte from response timing.
func ValidateBearer(authHeader, token string) error {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ErrInvalidToken
	}
	provided := strings.TrimPrefix(authHeader, bearerPrefix)
	if !hmac.Equal([]byte(provided), []byte(token)) {
		return ErrInvalidToken
	}
	return nil
}
