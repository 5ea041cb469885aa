package review

import (
	"context"
	"errors"
	"testing"

	artisanRepo "artisanhub/database/repository/artisan"
	bookingRepo "artisanhub/database/repository/booking"
	reviewRepo "artisanhub/database/repository/review"
	"artisanhub/models"
	"artisanhub/services/booking"
	"artisanhub/services/notification"
	"artisanhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []models.Review
	// duplicateOnCreate simulates the unique index rejecting an insert that the
	// advisory existence check missed.
	duplicateOnCreate bool
}

func (r *fakeReviewRepo) Create(rev *models.Review) error {
	if r.duplicateOnCreate {
		return reviewRepo.ErrDuplicateReview
	}
	for _, existing := range r.reviews {
		if existing.StudentID == rev.StudentID && existing.BookingID == rev.BookingID {
			return reviewRepo.ErrDuplicateReview
		}
	}
	r.reviews = append(r.reviews, *rev)
	return nil
}

func (r *fakeReviewRepo) GetByArtisan(artisanID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ArtisanID == artisanID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) GetByStudent(studentID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.StudentID == studentID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsForBooking(studentID, bookingID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.StudentID == studentID && rev.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

// stubBookingRepo is a map-backed booking store; it supports enough of the
// interface to drive a booking through its lifecycle in the flow test.
type stubBookingRepo struct {
	bookingRepo.BookingRepository
	bookings map[string]*models.Booking
}

func (r *stubBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *stubBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

// stubArtisanRepo serves GetByID and records SetRating calls.
type stubArtisanRepo struct {
	artisanRepo.ArtisanRepository
	artisans      map[string]*models.Artisan
	ratings       map[string]float64
	failSetRating bool
}

func (r *stubArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	return r.artisans[id], nil
}

func (r *stubArtisanRepo) SetRating(id string, rating float64) error {
	if r.failSetRating {
		return errors.New("write failed")
	}
	r.ratings[id] = rating
	return nil
}

func newTestService() (*DefaultReviewService, *fakeReviewRepo, *stubBookingRepo, *stubArtisanRepo) {
	reviews := &fakeReviewRepo{}
	bookings := &stubBookingRepo{bookings: map[string]*models.Booking{
		"b-completed": {ID: "b-completed", StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingCompleted},
		"b-pending":   {ID: "b-pending", StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingPending},
		"b-accepted":  {ID: "b-accepted", StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingAccepted},
		"b-cancelled": {ID: "b-cancelled", StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingCancelled},
		"b-other":     {ID: "b-other", StudentID: "student-2", ArtisanID: "artisan-1", Status: models.BookingCompleted},
	}}
	artisans := &stubArtisanRepo{
		artisans: map[string]*models.Artisan{
			"artisan-1": {ID: "artisan-1", Status: models.ArtisanApproved},
		},
		ratings: make(map[string]float64),
	}
	svc := &DefaultReviewService{Repo: reviews, Bookings: bookings, Artisans: artisans}
	return svc, reviews, bookings, artisans
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.True(t, errors.As(err, &svcErr), "expected a service error, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestSubmitReview(t *testing.T) {
	svc, reviews, _, artisans := newTestService()

	rev, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "great work")
	require.NoError(t, err)
	require.NotNil(t, rev)

	assert.Equal(t, "student-1", rev.StudentID)
	assert.Equal(t, "artisan-1", rev.ArtisanID)
	assert.Equal(t, "b-completed", rev.BookingID)
	assert.Equal(t, 5, rev.Rating)
	assert.Len(t, reviews.reviews, 1)
	assert.Equal(t, 5.0, artisans.ratings["artisan-1"])
}

func TestSubmitReviewBookingNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), "student-1", "missing", "artisan-1", 5, "great work")
	assertCode(t, err, utils.CodeNotFound)
}

func TestSubmitReviewForeignBooking(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), "student-1", "b-other", "artisan-1", 5, "great work")
	assertCode(t, err, utils.CodeForbidden)
}

func TestSubmitReviewBookingNotCompleted(t *testing.T) {
	svc, _, _, _ := newTestService()

	for _, id := range []string{"b-pending", "b-accepted", "b-cancelled"} {
		_, err := svc.Submit(context.Background(), "student-1", id, "artisan-1", 5, "great work")
		assertCode(t, err, utils.CodeInvalidState)
	}
}

func TestSubmitReviewDuplicate(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "great work")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 4, "changed my mind")
	assertCode(t, err, utils.CodeConflict)
}

func TestSubmitReviewDuplicateCaughtByIndex(t *testing.T) {
	svc, reviews, _, _ := newTestService()
	reviews.duplicateOnCreate = true

	_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "great work")
	assertCode(t, err, utils.CodeConflict)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	svc, _, bookings, _ := newTestService()

	for _, bad := range []int{0, 6, -1, 100} {
		_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", bad, "great work")
		assertCode(t, err, utils.CodeInvalidArgument)
	}

	// The bounds themselves are accepted.
	bookings.bookings["b-completed-2"] = &models.Booking{
		ID: "b-completed-2", StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingCompleted,
	}
	_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 1, "poor")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "student-1", "b-completed-2", "artisan-1", 5, "great")
	require.NoError(t, err)
}

func TestSubmitReviewRequiresText(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "")
	assertCode(t, err, utils.CodeInvalidArgument)
}

func TestSubmitReviewIgnoresClaimedArtisan(t *testing.T) {
	svc, _, _, _ := newTestService()

	// The artisan on the review comes from the booking, not the payload.
	rev, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-9", 5, "great work")
	require.NoError(t, err)
	assert.Equal(t, "artisan-1", rev.ArtisanID)
}

func TestRatingIsMeanOverAllReviews(t *testing.T) {
	svc, _, bookings, artisans := newTestService()

	ratings := []int{5, 3, 4}
	for i, r := range ratings {
		id := string(rune('a' + i))
		bookings.bookings[id] = &models.Booking{
			ID: id, StudentID: "student-1", ArtisanID: "artisan-1", Status: models.BookingCompleted,
		}
		_, err := svc.Submit(context.Background(), "student-1", id, "artisan-1", r, "review text")
		require.NoError(t, err)
	}

	assert.InDelta(t, 4.0, artisans.ratings["artisan-1"], 1e-9)
}

func TestSubmitReviewSurvivesRatingWriteFailure(t *testing.T) {
	svc, reviews, _, artisans := newTestService()
	artisans.failSetRating = true

	rev, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "great work")
	require.NoError(t, err)
	require.NotNil(t, rev)
	assert.Len(t, reviews.reviews, 1)
}

func TestBookingToReviewFlow(t *testing.T) {
	svc, _, bookings, artisans := newTestService()
	bookingSvc := &booking.DefaultBookingService{
		Repo:     bookings,
		Artisans: artisans,
		Notifier: notification.NoopNotifier{},
	}
	ctx := context.Background()

	b, err := bookingSvc.Create(ctx, "student-1", "artisan-1", "paint the fence", nil)
	require.NoError(t, err)

	// Not reviewable until completed.
	_, err = svc.Submit(ctx, "student-1", b.ID, "artisan-1", 5, "great work")
	assertCode(t, err, utils.CodeInvalidState)

	_, err = bookingSvc.Transition(ctx, "artisan-1", b.ID, models.BookingAccepted)
	require.NoError(t, err)
	_, err = bookingSvc.Transition(ctx, "artisan-1", b.ID, models.BookingCompleted)
	require.NoError(t, err)

	rev, err := svc.Submit(ctx, "student-1", b.ID, "artisan-1", 5, "great work")
	require.NoError(t, err)
	assert.Equal(t, "artisan-1", rev.ArtisanID)
	assert.Equal(t, 5.0, artisans.ratings["artisan-1"])

	// Second review for the same booking is rejected.
	_, err = svc.Submit(ctx, "student-1", b.ID, "artisan-1", 4, "still great")
	assertCode(t, err, utils.CodeConflict)
}

func TestListByArtisanAndStudent(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), "student-1", "b-completed", "artisan-1", 5, "great work")
	require.NoError(t, err)

	byArtisan, err := svc.ListByArtisan("artisan-1")
	require.NoError(t, err)
	assert.Len(t, byArtisan, 1)

	byStudent, err := svc.ListByStudent("student-1")
	require.NoError(t, err)
	assert.Len(t, byStudent, 1)

	none, err := svc.ListByArtisan("artisan-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
