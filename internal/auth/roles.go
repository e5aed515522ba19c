package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// RoleStore reads the current persisted role for an identity. Implementations
// must share the process-wide pool handle rather than opening connections per
// call.
type RoleStore interface {
	CurrentRole(ctx context.Context, userID string) (domain.Role, error)
}

// RequireRole guards privileged routes. The role embedded in the credential
// is ignored here: the current role is re-read from the system of record, so
// a token issued before a promotion or demotion cannot keep stale privileges.
func RequireRole(store RoleStore, allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewAuthenticationRequired("missing credential")
		}

		role, err := store.CurrentRole(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("identity not found")
			}
			return apperrors.MapError(err)
		}

		if len(allowedSet) > 0 {
			if _, exists := allowedSet[role]; !exists {
				return apperrors.NewForbidden("insufficient role")
			}
		}
		return c.Next()
	}
}
