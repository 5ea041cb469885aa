package review

import (
	"context"

	artisanRepo "artisanhub/database/repository/artisan"
	bookingRepo "artisanhub/database/repository/booking"
	reviewRepo "artisanhub/database/repository/review"
	"artisanhub/models"
)

// ReviewService accepts a one-time review for a completed booking and keeps
// the artisan's denormalized rating equal to the mean of all their reviews.
type ReviewService interface {
	Submit(ctx context.Context, studentID, bookingID, artisanID string, rating int, reviewText string) (*models.Review, error)
	ListByArtisan(artisanID string) ([]models.Review, error)
	ListByStudent(studentID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Artisans artisanRepo.ArtisanRepository
}
