package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
)

type reviewFixture struct {
	svc     *ReviewService
	artists *fakeArtistRepo
	reviews *fakeReviewRepo
	artist  *domain.ArtistProfile
}

func newReviewFixture() *reviewFixture {
	artists := newFakeArtistRepo()
	reviews := newFakeReviewRepo(artists)
	artist := artists.add(domain.ArtistProfile{UserID: "artist-user"})
	return &reviewFixture{
		svc:     NewReviewService(reviews, artists, nil),
		artists: artists,
		reviews: reviews,
		artist:  artist,
	}
}

func (f *reviewFixture) aggregate(t *testing.T) *domain.ArtistProfile {
	t.Helper()
	profile, err := f.artists.GetByID(context.Background(), f.artist.ID)
	require.NoError(t, err)
	return profile
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	f := newReviewFixture()

	for _, rating := range []int{0, -1, 6} {
		_, err := f.svc.Submit(context.Background(), "reviewer-1", f.artist.ID, rating, "", nil)
		require.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	}

	require.Equal(t, 0, f.aggregate(t).ReviewCount)
}

func TestSubmitReviewUnknownArtist(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Submit(context.Background(), "reviewer-1", "artist-404", 5, "", nil)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestSubmitReviewAveragesAcrossReviewers(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	for reviewer, rating := range map[string]int{"r1": 5, "r2": 4, "r3": 3} {
		_, err := f.svc.Submit(ctx, reviewer, f.artist.ID, rating, "solid work", nil)
		require.NoError(t, err)
	}

	profile := f.aggregate(t)
	require.Equal(t, 3, profile.ReviewCount)
	require.InDelta(t, 4.0, profile.Rating, 1e-9)
}

func TestResubmissionOverwritesNotDuplicates(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	first, err := f.svc.Submit(ctx, "r1", f.artist.ID, 2, "meh", nil)
	require.NoError(t, err)

	second, err := f.svc.Submit(ctx, "r1", f.artist.ID, 5, "changed my mind", nil)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	profile := f.aggregate(t)
	require.Equal(t, 1, profile.ReviewCount)
	require.InDelta(t, 5.0, profile.Rating, 1e-9)
}

func TestDeleteReviewRecomputesAggregate(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "r1", f.artist.ID, 5, "", nil)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, "r2", f.artist.ID, 1, "", nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, "r2", f.artist.ID))

	profile := f.aggregate(t)
	require.Equal(t, 1, profile.ReviewCount)
	require.InDelta(t, 5.0, profile.Rating, 1e-9)

	// deleting the last review zeroes the aggregate
	require.NoError(t, f.svc.Delete(ctx, "r1", f.artist.ID))
	profile = f.aggregate(t)
	require.Equal(t, 0, profile.ReviewCount)
	require.InDelta(t, 0.0, profile.Rating, 1e-9)
}

func TestDeleteMissingReviewNotFound(t *testing.T) {
	f := newReviewFixture()

	err := f.svc.Delete(context.Background(), "r1", f.artist.ID)
	require.Equal(t, "NOT_FOUND", errorCode(t, err))
}
