package bookingRepo

import "artisanhub/models"

// BookingRepository defines persistence operations for bookings. Bookings are
// never deleted; the only mutation after creation is a status transition.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// UpdateStatus atomically moves a booking from one status to another.
	// It reports false when no document matched (the booking vanished or a
	// concurrent transition won the race), leaving the record untouched.
	UpdateStatus(id string, from, to models.BookingStatus) (bool, error)
	GetByStudent(studentID string) ([]models.Booking, error)
	GetByArtisan(artisanID string) ([]models.Booking, error)
	Count() (int64, error)
}
