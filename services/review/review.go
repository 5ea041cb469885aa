package review

import (
	"context"
	"errors"
	"fmt"

	reviewRepo "artisanhub/database/repository/review"
	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit records a new review for a completed booking, then recomputes the
// artisan's rating as the arithmetic mean over the full review set. The
// preconditions are checked in order and fail fast; the unique index on
// (studentId, bookingId) is the authoritative duplicate guard and surfaces as
// the same conflict as the advisory existence check.
//
// The review insert and the rating update are two separate writes, not one
// transaction. Concurrent submissions for the same artisan may race on the
// read-all-then-average sequence; last write wins, and the next submission
// re-averages over the full set, so the stored rating converges.
func (s *DefaultReviewService) Submit(ctx context.Context, studentID, bookingID, artisanID string, rating int, reviewText string) (*models.Review, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to load booking for review", zap.Error(err))
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "booking not found")
	}
	if booking.StudentID != studentID {
		return nil, utils.NewServiceError(utils.CodeForbidden, "you can only review your own bookings")
	}
	if booking.Status != models.BookingCompleted {
		return nil, utils.NewServiceError(utils.CodeInvalidState, "you can only review completed bookings")
	}

	exists, err := s.Repo.ExistsForBooking(studentID, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing review", zap.Error(err))
		return nil, fmt.Errorf("failed to check for existing review: %w", err)
	}
	if exists {
		return nil, utils.NewServiceError(utils.CodeConflict, "you have already reviewed this booking")
	}

	if rating < 1 || rating > 5 {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "rating must be between 1 and 5")
	}
	if reviewText == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "review text is required")
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		ArtisanID:  booking.ArtisanID,
		BookingID:  bookingID,
		Rating:     rating,
		ReviewText: reviewText,
	}
	if err := s.Repo.Create(rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			return nil, utils.NewServiceError(utils.CodeConflict, "you have already reviewed this booking")
		}
		utils.GetLogger().Error("Failed to create review", zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(booking.ArtisanID); err != nil {
		// The review is persisted; a failed recompute self-heals on the next
		// submission, so log it rather than failing the request.
		utils.GetLogger().Error("Failed to recompute artisan rating",
			zap.String("artisanId", booking.ArtisanID), zap.Error(err))
	}

	return rev, nil
}

// recomputeRating overwrites the artisan's rating with the mean of every
// review referencing them. The caller guarantees at least one review exists
// (the one just inserted), so the division is safe.
func (s *DefaultReviewService) recomputeRating(artisanID string) error {
	reviews, err := s.Repo.GetByArtisan(artisanID)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews for artisan %s: %w", artisanID, err)
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, rev := range reviews {
		sum += rev.Rating
	}
	mean := float64(sum) / float64(len(reviews))

	if err := s.Artisans.SetRating(artisanID, mean); err != nil {
		return fmt.Errorf("failed to store rating for artisan %s: %w", artisanID, err)
	}
	return nil
}

// ListByArtisan returns all reviews referencing the artisan, newest first.
func (s *DefaultReviewService) ListByArtisan(artisanID string) ([]models.Review, error) {
	reviews, err := s.Repo.GetByArtisan(artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for artisan %s: %w", artisanID, err)
	}
	return reviews, nil
}

// ListByStudent returns all reviews written by the student, newest first.
func (s *DefaultReviewService) ListByStudent(studentID string) ([]models.Review, error) {
	reviews, err := s.Repo.GetByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for student %s: %w", studentID, err)
	}
	return reviews, nil
}
