package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"artisanhub/database"
	"artisanhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the query indexes and the uniqueness constraint that
// prevents duplicate reviews by the same student for the same booking.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "artisanId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document. A unique-index violation on
// (studentId, bookingId) is mapped to ErrDuplicateReview.
func (r *MongoReviewRepo) Create(rev *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rev.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, rev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) findSorted(filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// GetByArtisan retrieves all reviews referencing an artisan, newest first.
func (r *MongoReviewRepo) GetByArtisan(artisanID string) ([]models.Review, error) {
	return r.findSorted(bson.M{"artisanId": artisanID})
}

// GetByStudent retrieves all reviews written by a student, newest first.
func (r *MongoReviewRepo) GetByStudent(studentID string) ([]models.Review, error) {
	return r.findSorted(bson.M{"studentId": studentID})
}

// ExistsForBooking reports whether the student already reviewed the booking.
func (r *MongoReviewRepo) ExistsForBooking(studentID, bookingID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"studentId": studentID, "bookingId": bookingID})
	if err != nil {
		return false, fmt.Errorf("failed to check for existing review: %w", err)
	}
	return count > 0, nil
}
