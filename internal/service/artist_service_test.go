package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
)

func newTestArtistService(artists *fakeArtistRepo) *ArtistService {
	return NewArtistService(artists, nil, zap.NewNop())
}

func TestCreateProfileStartsAvailable(t *testing.T) {
	artists := newFakeArtistRepo()
	svc := newTestArtistService(artists)

	profile, err := svc.CreateProfile(context.Background(), "user-1", ArtistProfileInput{
		Bio:         "  black and grey realism  ",
		Specialties: []string{"realism"},
	})
	require.NoError(t, err)
	require.True(t, profile.Available)
	require.Equal(t, "black and grey realism", profile.Bio)
	require.Equal(t, 0, profile.ReviewCount)
}

func TestCreateProfileTwiceConflicts(t *testing.T) {
	svc := newTestArtistService(newFakeArtistRepo())
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "user-1", ArtistProfileInput{})
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, "user-1", ArtistProfileInput{})
	require.Equal(t, "CONFLICT", errorCode(t, err))
}

func TestSetAvailabilityWithoutProfile(t *testing.T) {
	svc := newTestArtistService(newFakeArtistRepo())

	_, err := svc.SetAvailability(context.Background(), "user-1", false)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestSetAvailabilityToggles(t *testing.T) {
	artists := newFakeArtistRepo()
	artists.add(domain.ArtistProfile{UserID: "user-1", Available: true})
	svc := newTestArtistService(artists)

	profile, err := svc.SetAvailability(context.Background(), "user-1", false)
	require.NoError(t, err)
	require.False(t, profile.Available)
}

func TestGetUnknownArtist(t *testing.T) {
	svc := newTestArtistService(newFakeArtistRepo())

	_, err := svc.Get(context.Background(), "artist-404")
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}
