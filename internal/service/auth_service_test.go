package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

func newTestAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(config.AuthConfig{
		JWTSecret:           "test-secret",
		SessionTokenTTLDays: 7,
		RefreshTokenTTLDays: 30,
		BcryptCost:          bcrypt.MinCost,
	}, users, nil)
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	return domainErr.Code
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	registered, token, _, err := svc.Register(ctx, "Ada", "Ada@Example.com ", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "ada@example.com", registered.Email)
	require.Equal(t, domain.RoleClient, registered.Role)

	loggedIn, token2, _, err := svc.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	require.Equal(t, registered.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Other Ada", "ada@example.com", "different")
	require.Equal(t, "CONFLICT", errorCode(t, err))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "", "ada@example.com", "s3cret")
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, err))

	_, _, _, err = svc.Register(ctx, "Ada", "ada@example.com", "")
	require.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	// Unknown email and wrong password produce the same code so a caller
	// cannot probe which emails exist.
	_, _, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	require.Equal(t, "INVALID_CREDENTIAL", errorCode(t, err))

	_, _, _, err = svc.Login(ctx, "ada@example.com", "wrong")
	require.Equal(t, "INVALID_CREDENTIAL", errorCode(t, err))
}

func TestRenewIssuesFreshSessionFromStore(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	refresh, _, err := svc.RefreshToken(registered.ID)
	require.NoError(t, err)

	// Promote after issuance; the renewed session must carry the new role.
	require.NoError(t, users.UpdateRole(ctx, registered.ID, domain.RoleArtist))

	renewedUser, session, _, err := svc.Renew(ctx, refresh)
	require.NoError(t, err)
	require.Equal(t, domain.RoleArtist, renewedUser.Role)

	claims, err := svc.TokenManager().Parse(session)
	require.NoError(t, err)
	require.Equal(t, domain.RoleArtist, claims.Role)
	require.Equal(t, domain.TokenKindSession, claims.Kind)
}

func TestRenewRejectsSessionToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, session, _, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = svc.Renew(ctx, session)
	require.Equal(t, "INVALID_CREDENTIAL", errorCode(t, err))
}

func TestRenewForDeletedIdentityUnauthorized(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	refresh, _, err := svc.RefreshToken("gone-user")
	require.NoError(t, err)

	_, _, _, err = svc.Renew(context.Background(), refresh)
	require.Equal(t, "UNAUTHORIZED", errorCode(t, err))
}

func TestMeUnknownIdentityUnauthorized(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Me(context.Background(), "missing")
	require.Equal(t, "UNAUTHORIZED", errorCode(t, err))
}
