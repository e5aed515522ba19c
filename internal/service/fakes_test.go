package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.BookingRepository = (*fakeBookingRepo)(nil)
	_ repository.DesignRepository  = (*fakeDesignRepo)(nil)
	_ repository.ArtistRepository  = (*fakeArtistRepo)(nil)
	_ repository.ReviewRepository  = (*fakeReviewRepo)(nil)
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakeUserRepo struct {
	mu     sync.Mutex
	seq    int
	users  map[string]*domain.User
	emails map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, emails: map[string]string{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emails[user.Email]; exists {
		return uniqueViolation()
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	copied := *user
	r.users[user.ID] = &copied
	r.emails[user.Email] = user.ID
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	id, ok := r.emails[email]
	r.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(context.Background(), id)
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) CurrentRole(_ context.Context, id string) (domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return user.Role, nil
}

func (r *fakeUserRepo) add(user domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.ID] = &user
	if user.Email != "" {
		r.emails[user.Email] = user.ID
	}
	return &user
}

type fakeBookingRepo struct {
	mu sync.Mutex
	// createFailures forces this many unique violations before accepting an
	// insert, simulating confirmation-code collisions.
	createFailures int
	seq            int
	bookings       map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*domain.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createFailures > 0 {
		r.createFailures--
		return uniqueViolation()
	}
	r.seq++
	booking.ID = fmt.Sprintf("booking-%d", r.seq)
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatusIf(_ context.Context, id string, expected, next domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok || booking.Status != expected {
		return nil, pgx.ErrNoRows
	}
	booking.Status = next
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) CancelIfActive(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusConfirmed {
		return nil, pgx.ErrNoRows
	}
	booking.Status = domain.BookingStatusCancelled
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter repository.BookingFilter) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Booking
	for _, booking := range r.bookings {
		if filter.ClientID != nil && booking.ClientID != *filter.ClientID {
			continue
		}
		if filter.ArtistID != nil && (booking.ArtistID == nil || *booking.ArtistID != *filter.ArtistID) {
			continue
		}
		if len(filter.Statuses) > 0 {
			matched := false
			for _, status := range filter.Statuses {
				if booking.Status == status {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, *booking)
	}
	return result, nil
}

func (r *fakeBookingRepo) add(booking domain.Booking) *domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("booking-%d", r.seq)
	}
	r.bookings[booking.ID] = &booking
	return &booking
}

type fakeDesignRepo struct {
	mu      sync.Mutex
	seq     int
	designs map[string]*domain.Design
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: map[string]*domain.Design{}}
}

func (r *fakeDesignRepo) Create(_ context.Context, design *domain.Design) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	design.ID = fmt.Sprintf("design-%d", r.seq)
	copied := *design
	r.designs[design.ID] = &copied
	return nil
}

func (r *fakeDesignRepo) GetByID(_ context.Context, id string) (*domain.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	design, ok := r.designs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *design
	return &copied, nil
}

func (r *fakeDesignRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]domain.Design, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Design
	for _, design := range r.designs {
		if design.OwnerID == ownerID {
			result = append(result, *design)
		}
	}
	return result, nil
}

type fakeArtistRepo struct {
	mu       sync.Mutex
	seq      int
	profiles map[string]*domain.ArtistProfile
	byUser   map[string]string
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{profiles: map[string]*domain.ArtistProfile{}, byUser: map[string]string{}}
}

func (r *fakeArtistRepo) CreateWithPromotion(_ context.Context, profile *domain.ArtistProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUser[profile.UserID]; exists {
		return uniqueViolation()
	}
	r.seq++
	profile.ID = fmt.Sprintf("artist-%d", r.seq)
	copied := *profile
	r.profiles[profile.ID] = &copied
	r.byUser[profile.UserID] = profile.ID
	return nil
}

func (r *fakeArtistRepo) GetByID(_ context.Context, id string) (*domain.ArtistProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeArtistRepo) GetByUserID(_ context.Context, userID string) (*domain.ArtistProfile, error) {
	r.mu.Lock()
	id, ok := r.byUser[userID]
	r.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(context.Background(), id)
}

func (r *fakeArtistRepo) List(_ context.Context) ([]domain.ArtistProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.ArtistProfile
	for _, profile := range r.profiles {
		result = append(result, *profile)
	}
	return result, nil
}

func (r *fakeArtistRepo) SetAvailability(_ context.Context, userID string, available bool) (*domain.ArtistProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byUser[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	r.profiles[id].Available = available
	copied := *r.profiles[id]
	return &copied, nil
}

func (r *fakeArtistRepo) add(profile domain.ArtistProfile) *domain.ArtistProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("artist-%d", r.seq)
	}
	r.profiles[profile.ID] = &profile
	r.byUser[profile.UserID] = profile.ID
	return &profile
}

// fakeReviewRepo mirrors the transactional contract of the real repository:
// every mutation recomputes the owning artist's aggregate from the full set.
type fakeReviewRepo struct {
	mu      sync.Mutex
	seq     int
	reviews map[string]*domain.Review
	artists *fakeArtistRepo
}

func newFakeReviewRepo(artists *fakeArtistRepo) *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*domain.Review{}, artists: artists}
}

func reviewKey(reviewerID, artistID string) string {
	return reviewerID + "|" + artistID
}

func (r *fakeReviewRepo) UpsertWithRecompute(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reviewKey(review.ReviewerID, review.ArtistID)
	if existing, ok := r.reviews[key]; ok {
		existing.Rating = review.Rating
		existing.Comment = review.Comment
		existing.Images = review.Images
		review.ID = existing.ID
	} else {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
		copied := *review
		r.reviews[key] = &copied
	}
	r.recompute(review.ArtistID)
	return nil
}

func (r *fakeReviewRepo) DeleteWithRecompute(_ context.Context, reviewerID, artistID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reviewKey(reviewerID, artistID)
	if _, ok := r.reviews[key]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reviews, key)
	r.recompute(artistID)
	return nil
}

func (r *fakeReviewRepo) GetByReviewerAndArtist(_ context.Context, reviewerID, artistID string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewKey(reviewerID, artistID)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) recompute(artistID string) {
	sum, count := 0, 0
	for _, review := range r.reviews {
		if review.ArtistID == artistID {
			sum += review.Rating
			count++
		}
	}
	r.artists.mu.Lock()
	defer r.artists.mu.Unlock()
	for _, profile := range r.artists.profiles {
		if profile.ID == artistID {
			profile.ReviewCount = count
			if count == 0 {
				profile.Rating = 0
			} else {
				profile.Rating = float64(sum) / float64(count)
			}
		}
	}
}
