package booking

import (
	"context"
	"time"

	artisanRepo "artisanhub/database/repository/artisan"
	bookingRepo "artisanhub/database/repository/booking"
	"artisanhub/models"
	"artisanhub/services/notification"
)

// BookingService gates every mutation of a booking record: creation by a
// student against an approved artisan, and status transitions by the assigned
// artisan along the fixed lifecycle graph.
type BookingService interface {
	Create(ctx context.Context, studentID, artisanID, jobDetails string, scheduledDate *time.Time) (*models.Booking, error)
	Transition(ctx context.Context, actorID, bookingID string, requested models.BookingStatus) (*models.Booking, error)
	ListByStudent(studentID string) ([]models.Booking, error)
	ListByArtisan(artisanID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Artisans artisanRepo.ArtisanRepository
	Notifier notification.Notifier
}
