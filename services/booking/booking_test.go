package booking

import (
	"context"
	"errors"
	"testing"

	artisanRepo "artisanhub/database/repository/artisan"
	"artisanhub/models"
	"artisanhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	// casMiss forces the next UpdateStatus to report no match, simulating a
	// concurrent transition winning the race.
	casMiss bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (bool, error) {
	if r.casMiss {
		r.casMiss = false
		return false, nil
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepo) GetByStudent(studentID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StudentID == studentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByArtisan(artisanID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ArtisanID == artisanID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Count() (int64, error) {
	return int64(len(r.bookings)), nil
}

// stubArtisanRepo serves GetByID from a map; the embedded interface panics on
// anything the booking service should never call.
type stubArtisanRepo struct {
	artisanRepo.ArtisanRepository
	artisans map[string]*models.Artisan
}

func (r *stubArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	return r.artisans[id], nil
}

type recordingNotifier struct {
	targets  []string
	messages []string
}

func (n *recordingNotifier) Notify(ctx context.Context, targetID, message string) {
	n.targets = append(n.targets, targetID)
	n.messages = append(n.messages, message)
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *recordingNotifier) {
	repo := newFakeBookingRepo()
	artisans := &stubArtisanRepo{artisans: map[string]*models.Artisan{
		"artisan-1": {ID: "artisan-1", Status: models.ArtisanApproved},
		"artisan-2": {ID: "artisan-2", Status: models.ArtisanApproved},
		"artisan-pending": {ID: "artisan-pending", Status: models.ArtisanPending},
	}}
	notifier := &recordingNotifier{}
	return &DefaultBookingService{Repo: repo, Artisans: artisans, Notifier: notifier}, repo, notifier
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.True(t, errors.As(err, &svcErr), "expected a service error, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func seedBooking(repo *fakeBookingRepo, id string, status models.BookingStatus) {
	repo.bookings[id] = &models.Booking{
		ID:         id,
		StudentID:  "student-1",
		ArtisanID:  "artisan-1",
		Status:     status,
		JobDetails: "fix the door",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, notifier := newTestService()

	b, err := svc.Create(context.Background(), "student-1", "artisan-1", "fix the door", nil)
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "student-1", b.StudentID)
	assert.Equal(t, "artisan-1", b.ArtisanID)
	assert.NotEmpty(t, b.ID)

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.BookingPending, stored.Status)

	require.Len(t, notifier.targets, 1)
	assert.Equal(t, "artisan-1", notifier.targets[0])
}

func TestCreateBookingRequiresJobDetails(t *testing.T) {
	svc, _, notifier := newTestService()

	_, err := svc.Create(context.Background(), "student-1", "artisan-1", "", nil)
	assertCode(t, err, utils.CodeInvalidArgument)
	assert.Empty(t, notifier.targets)
}

func TestCreateBookingUnknownArtisan(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), "student-1", "nobody", "fix the door", nil)
	assertCode(t, err, utils.CodeNotFound)
}

func TestCreateBookingUnapprovedArtisan(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), "student-1", "artisan-pending", "fix the door", nil)
	assertCode(t, err, utils.CodeNotFound)
}

func TestTransitionAcceptThenComplete(t *testing.T) {
	svc, repo, notifier := newTestService()
	seedBooking(repo, "b1", models.BookingPending)

	b, err := svc.Transition(context.Background(), "artisan-1", "b1", models.BookingAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, b.Status)

	b, err = svc.Transition(context.Background(), "artisan-1", "b1", models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, b.Status)

	stored, _ := repo.GetByID("b1")
	assert.Equal(t, models.BookingCompleted, stored.Status)

	// One student notification per successful transition.
	require.Len(t, notifier.targets, 2)
	assert.Equal(t, []string{"student-1", "student-1"}, notifier.targets)
}

func TestTransitionCancelPending(t *testing.T) {
	svc, repo, _ := newTestService()
	seedBooking(repo, "b1", models.BookingPending)

	b, err := svc.Transition(context.Background(), "artisan-1", "b1", models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, b.Status)
}

func TestTransitionBookingNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Transition(context.Background(), "artisan-1", "missing", models.BookingAccepted)
	assertCode(t, err, utils.CodeNotFound)
}

func TestTransitionByWrongArtisan(t *testing.T) {
	svc, repo, notifier := newTestService()
	seedBooking(repo, "b1", models.BookingPending)

	_, err := svc.Transition(context.Background(), "artisan-2", "b1", models.BookingAccepted)
	assertCode(t, err, utils.CodeForbidden)

	stored, _ := repo.GetByID("b1")
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.Empty(t, notifier.targets)
}

func TestTransitionFromTerminalStates(t *testing.T) {
	svc, repo, _ := newTestService()

	for _, terminal := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		seedBooking(repo, "b1", terminal)
		for _, requested := range []models.BookingStatus{
			models.BookingPending, models.BookingAccepted,
			models.BookingCompleted, models.BookingCancelled,
		} {
			_, err := svc.Transition(context.Background(), "artisan-1", "b1", requested)
			assertCode(t, err, utils.CodeInvalidTransition)
		}
	}
}

func TestTransitionIllegalEdges(t *testing.T) {
	svc, repo, _ := newTestService()

	// pending cannot jump straight to completed.
	seedBooking(repo, "b1", models.BookingPending)
	_, err := svc.Transition(context.Background(), "artisan-1", "b1", models.BookingCompleted)
	assertCode(t, err, utils.CodeInvalidTransition)

	// accepted cannot be cancelled or re-accepted.
	seedBooking(repo, "b2", models.BookingAccepted)
	_, err = svc.Transition(context.Background(), "artisan-1", "b2", models.BookingCancelled)
	assertCode(t, err, utils.CodeInvalidTransition)
	_, err = svc.Transition(context.Background(), "artisan-1", "b2", models.BookingAccepted)
	assertCode(t, err, utils.CodeInvalidTransition)
}

func TestTransitionUnknownStatus(t *testing.T) {
	svc, repo, _ := newTestService()
	seedBooking(repo, "b1", models.BookingPending)

	_, err := svc.Transition(context.Background(), "artisan-1", "b1", models.BookingStatus("paused"))
	assertCode(t, err, utils.CodeInvalidArgument)
}

func TestTransitionLosesConcurrentRace(t *testing.T) {
	svc, repo, notifier := newTestService()
	seedBooking(repo, "b1", models.BookingPending)
	repo.casMiss = true

	_, err := svc.Transition(context.Background(), "artisan-1", "b1", models.BookingAccepted)
	assertCode(t, err, utils.CodeInvalidTransition)
	assert.Empty(t, notifier.targets)
}

func TestListByStudentAndArtisan(t *testing.T) {
	svc, repo, _ := newTestService()
	seedBooking(repo, "b1", models.BookingPending)
	seedBooking(repo, "b2", models.BookingAccepted)

	byStudent, err := svc.ListByStudent("student-1")
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	byArtisan, err := svc.ListByArtisan("artisan-1")
	require.NoError(t, err)
	assert.Len(t, byArtisan, 2)

	none, err := svc.ListByStudent("student-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
