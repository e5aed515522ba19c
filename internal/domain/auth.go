package domain

import "time"

// TokenKind differentiates session tokens from long-lived refresh tokens.
type TokenKind string

const (
	TokenKindSession TokenKind = "SESSION"
	TokenKindRefresh TokenKind = "REFRESH"
)

// Token represents issued authentication token metadata.
type Token struct {
	UserID    string
	Kind      TokenKind
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}
