package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/persistence"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

const (
	artistListCacheKey = "artists:list"
	artistListCacheTTL = time.Minute
)

// ArtistService manages artist profiles. The public listing is cached in
// Redis; roles and other authorization state are never cached.
type ArtistService struct {
	artists repository.ArtistRepository
	cache   *persistence.Redis
	logger  *zap.Logger
}

// ArtistProfileInput describes profile creation payload.
type ArtistProfileInput struct {
	Bio             string
	Specialties     []string
	ExperienceYears int
	PortfolioImages []string
}

// NewArtistService constructs the service.
func NewArtistService(artists repository.ArtistRepository, cache *persistence.Redis, logger *zap.Logger) *ArtistService {
	return &ArtistService{artists: artists, cache: cache, logger: logger}
}

// CreateProfile creates the caller's artist profile and promotes a CLIENT
// account to ARTIST.
func (s *ArtistService) CreateProfile(ctx context.Context, userID string, input ArtistProfileInput) (*domain.ArtistProfile, error) {
	profile := &domain.ArtistProfile{
		UserID:          userID,
		Bio:             strings.TrimSpace(input.Bio),
		Specialties:     input.Specialties,
		ExperienceYears: input.ExperienceYears,
		PortfolioImages: input.PortfolioImages,
		Available:       true,
	}
	if err := s.artists.CreateWithPromotion(ctx, profile); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("artist profile already exists", nil)
		}
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

// SetAvailability toggles the availability flag on the caller's own profile.
func (s *ArtistService) SetAvailability(ctx context.Context, userID string, available bool) (*domain.ArtistProfile, error) {
	profile, err := s.artists.SetAvailability(ctx, userID, available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("artist profile", nil)
		}
		return nil, err
	}
	s.invalidateListing(ctx)
	return profile, nil
}

// Get returns one artist profile.
func (s *ArtistService) Get(ctx context.Context, id string) (*domain.ArtistProfile, error) {
	profile, err := s.artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("artist", nil)
		}
		return nil, err
	}
	return profile, nil
}

// List returns the public artist listing, served from cache when possible.
// Cache failures degrade to the store and are only logged.
func (s *ArtistService) List(ctx context.Context) ([]domain.ArtistProfile, error) {
	if cached, ok := s.cachedListing(ctx); ok {
		return cached, nil
	}

	profiles, err := s.artists.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeListing(ctx, profiles)
	return profiles, nil
}

func (s *ArtistService) cachedListing(ctx context.Context) ([]domain.ArtistProfile, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, artistListCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var profiles []domain.ArtistProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		s.logger.Warn("corrupt artist listing cache", zap.Error(err))
		return nil, false
	}
	return profiles, true
}

func (s *ArtistService) storeListing(ctx context.Context, profiles []domain.ArtistProfile) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(profiles)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, artistListCacheKey, raw, artistListCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache artist listing", zap.Error(err))
	}
}

func (s *ArtistService) invalidateListing(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, artistListCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate artist listing cache", zap.Error(err))
	}
}
