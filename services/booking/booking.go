package booking

import (
	"context"
	"fmt"
	"time"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create registers a new booking in the pending state. The referenced artisan
// must exist and be approved. The artisan is notified best-effort.
func (s *DefaultBookingService) Create(ctx context.Context, studentID, artisanID, jobDetails string, scheduledDate *time.Time) (*models.Booking, error) {
	if jobDetails == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "job details are required")
	}

	artisan, err := s.Artisans.GetByID(artisanID)
	if err != nil {
		utils.GetLogger().Error("Failed to load artisan for booking", zap.Error(err))
		return nil, fmt.Errorf("failed to load artisan: %w", err)
	}
	if artisan == nil || artisan.Status != models.ArtisanApproved {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not available")
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		StudentID:     studentID,
		ArtisanID:     artisanID,
		Status:        models.BookingPending,
		JobDetails:    jobDetails,
		ScheduledDate: scheduledDate,
	}
	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Notifier.Notify(ctx, artisanID, "You have a new job request!")

	return b, nil
}

// legalTransition reports whether a booking in state current may move to
// requested. Terminal states never admit a transition.
func legalTransition(current, requested models.BookingStatus) bool {
	switch current {
	case models.BookingPending:
		return requested == models.BookingAccepted || requested == models.BookingCancelled
	case models.BookingAccepted:
		return requested == models.BookingCompleted
	default:
		return false
	}
}

// Transition moves a booking to the requested status on behalf of the acting
// artisan. The read-check-write sequence is guarded by a compare-and-swap on
// the current status, so concurrent conflicting transitions on the same
// booking cannot both succeed. The student is notified exactly once per
// successful transition, best effort.
func (s *DefaultBookingService) Transition(ctx context.Context, actorID, bookingID string, requested models.BookingStatus) (*models.Booking, error) {
	if !requested.Valid() {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "unknown booking status %q", requested)
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to load booking", zap.Error(err))
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if b == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "booking not found")
	}
	if b.ArtisanID != actorID {
		return nil, utils.NewServiceError(utils.CodeForbidden, "not authorized to update this booking")
	}

	if b.Status.Terminal() {
		return nil, utils.NewServiceError(utils.CodeInvalidTransition, "booking already closed")
	}
	if !legalTransition(b.Status, requested) {
		return nil, utils.NewServiceError(utils.CodeInvalidTransition,
			"cannot move booking from %s to %s", b.Status, requested)
	}

	matched, err := s.Repo.UpdateStatus(bookingID, b.Status, requested)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking status", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !matched {
		// A concurrent transition changed the status between our read and the
		// compare-and-swap. The request loses, same as if the state had already
		// advanced at read time.
		return nil, utils.NewServiceError(utils.CodeInvalidTransition,
			"booking status changed concurrently")
	}

	b.Status = requested
	b.UpdatedAt = time.Now()

	s.Notifier.Notify(ctx, b.StudentID, fmt.Sprintf("Your booking status changed to: %s", requested))

	return b, nil
}

// ListByStudent returns all bookings created by the student, newest first.
func (s *DefaultBookingService) ListByStudent(studentID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for student %s: %w", studentID, err)
	}
	return bookings, nil
}

// ListByArtisan returns all bookings assigned to the artisan, newest first.
func (s *DefaultBookingService) ListByArtisan(artisanID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByArtisan(artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for artisan %s: %w", artisanID, err)
	}
	return bookings, nil
}
