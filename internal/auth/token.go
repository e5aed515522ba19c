package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

// Sentinel errors distinguishing expiry from structural failure. A parse
// failure never implies anything about the embedded role either way.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenManager issues and verifies signed session credentials. The signing
// secret is fixed at construction time and never changes for the process.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, sessionTTL, refreshTTL time.Duration) *TokenManager {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), sessionTTL: sessionTTL, refreshTTL: refreshTTL}
}

// Claims describes the JWT payload. Email and Role are snapshots taken at
// issue time; privileged routes re-verify the role against the store.
type Claims struct {
	UserID string           `json:"uid"`
	Email  string           `json:"email,omitempty"`
	Role   domain.Role      `json:"role,omitempty"`
	Kind   domain.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// IssueSession builds and signs a 7-day session token.
func (tm *TokenManager) IssueSession(userID, email string, role domain.Role) (string, time.Time, error) {
	return tm.sign(&Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   domain.TokenKindSession,
	}, tm.sessionTTL)
}

// IssueRefresh builds and signs a 30-day refresh token carrying the user id only.
func (tm *TokenManager) IssueRefresh(userID string) (string, time.Time, error) {
	return tm.sign(&Claims{
		UserID: userID,
		Kind:   domain.TokenKindRefresh,
	}, tm.refreshTTL)
}

func (tm *TokenManager) sign(claims *Claims, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates the signature and expiry and returns the claims. Expired
// tokens return ErrTokenExpired; anything structurally or cryptographically
// wrong returns ErrTokenMalformed.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
