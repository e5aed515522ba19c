package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTokenTTL(), cfg.RefreshTokenTTL()),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new client account and issues a session credential.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name, email, password required", nil)
	}

	user := &domain.User{
		Name:  name,
		Email: email,
		Role:  domain.RoleClient,
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		},
	})
	return user, token, exp, nil
}

// Login authenticates an account by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredential("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredential("invalid email or password")
	}

	token, exp, err := s.tokenMgr.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// RefreshToken issues a refresh credential for a freshly authenticated user.
func (s *AuthService) RefreshToken(userID string) (string, time.Time, error) {
	return s.tokenMgr.IssueRefresh(userID)
}

// Renew exchanges a valid refresh credential for a new session credential.
// The role comes from the store at renewal time, not from the old token.
func (s *AuthService) Renew(ctx context.Context, refreshToken string) (*domain.User, string, time.Time, error) {
	claims, err := s.tokenMgr.Parse(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredential("refresh credential expired")
		}
		return nil, "", time.Time{}, apperrors.NewInvalidCredential("invalid refresh credential")
	}
	if claims.Kind != domain.TokenKindRefresh {
		return nil, "", time.Time{}, apperrors.NewInvalidCredential("not a refresh credential")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("identity not found")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.IssueSession(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Me returns the current account projection.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("identity not found")
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}
