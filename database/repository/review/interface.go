package reviewRepo

import (
	"errors"

	"artisanhub/models"
)

// ErrDuplicateReview is returned when the unique (studentId, bookingId) index
// rejects an insert. The application-level existence check is advisory; this
// constraint is the authoritative guard under concurrent submissions.
var ErrDuplicateReview = errors.New("review already exists for this booking")

// ReviewRepository defines persistence operations for reviews. Reviews are
// immutable: there is no update or delete path.
type ReviewRepository interface {
	Create(rev *models.Review) error
	GetByArtisan(artisanID string) ([]models.Review, error)
	GetByStudent(studentID string) ([]models.Review, error)
	ExistsForBooking(studentID, bookingID string) (bool, error)
}
