package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
)

func TestUpsertWithRecomputeRunsInOneTransaction(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM artist_profiles WHERE id=\\$1 FOR UPDATE").
		WithArgs("artist-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("artist-1"))
	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs("reviewer-1", "artist-1", 5, "great", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("review-1", now, now))
	mock.ExpectExec("UPDATE artist_profiles SET").
		WithArgs("artist-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	review := &domain.Review{ReviewerID: "reviewer-1", ArtistID: "artist-1", Rating: 5, Comment: "great"}
	require.NoError(t, repo.UpsertWithRecompute(context.Background(), review))
	require.Equal(t, "review-1", review.ID)
}

func TestUpsertWithRecomputeUnknownArtistRollsBack(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM artist_profiles WHERE id=\\$1 FOR UPDATE").
		WithArgs("artist-404").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	review := &domain.Review{ReviewerID: "reviewer-1", ArtistID: "artist-404", Rating: 5}
	err := repo.UpsertWithRecompute(context.Background(), review)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDeleteWithRecompute(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM artist_profiles WHERE id=\\$1 FOR UPDATE").
		WithArgs("artist-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("artist-1"))
	mock.ExpectExec("DELETE FROM reviews").
		WithArgs("reviewer-1", "artist-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("UPDATE artist_profiles SET").
		WithArgs("artist-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.DeleteWithRecompute(context.Background(), "reviewer-1", "artist-1"))
}

func TestDeleteWithRecomputeMissingRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM artist_profiles WHERE id=\\$1 FOR UPDATE").
		WithArgs("artist-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("artist-1"))
	mock.ExpectExec("DELETE FROM reviews").
		WithArgs("reviewer-1", "artist-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := repo.DeleteWithRecompute(context.Background(), "reviewer-1", "artist-1")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}
