package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

const claimsKey = "auth_claims"

// CookieName is the httpOnly cookie carrying the session token for browsers.
const CookieName = "token"

// AuthMiddleware validates session credentials from the Authorization header
// or the token cookie. It performs a pure cryptographic check only; fresh
// role verification for privileged routes is RoleGuard's job.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := extractToken(c)
	if tokenStr == "" {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewInvalidCredential("credential expired")
		}
		return apperrors.NewInvalidCredential("invalid credential")
	}
	// refresh credentials only buy a new session via renewal, never direct access
	if claims.Kind != domain.TokenKindSession {
		return apperrors.NewInvalidCredential("not a session credential")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// ClaimsFromContext retrieves the verified claims of the caller.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
