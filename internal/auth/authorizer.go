package auth

import "crypto/subtle"

// Authorizer decides whether a presented credential grants admin access.
type Authorizer interface {
	Check(candidate string) bool
}

// StaticToken authorizes requests presenting one process-wide shared secret.
type StaticToken struct {
	token []byte
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: []byte(token)}
}

// Check reports an exact match. An empty secret or candidate never matches.
func (s *StaticToken) Check(candidate string) bool {
	if len(s.token) == 0 || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare(s.token, []byte(candidate)) == 1
}

// Token returns the configured secret, handed out by the login endpoint.
func (s *StaticToken) Token() string {
	return string(s.token)
}

// CheckPassword compares a submitted password against the configured one.
func CheckPassword(configured, submitted string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}
