package artisanRepo

import (
	"context"
	"fmt"
	"time"

	"artisanhub/database"
	"artisanhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoArtisanRepo implements ArtisanRepository using MongoDB.
type MongoArtisanRepo struct {
	coll *mongo.Collection
}

// NewMongoArtisanRepo creates a new instance of ArtisanRepository using MongoDB.
func NewMongoArtisanRepo() ArtisanRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("artisans")
	repo := &MongoArtisanRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoArtisanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "skillCategory", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new artisan document.
func (r *MongoArtisanRepo) Create(a *models.Artisan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create artisan: %w", err)
	}
	return nil
}

// GetByID retrieves an artisan by its unique ID. Returns nil when absent.
func (r *MongoArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Artisan
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch artisan with id %s: %w", id, err)
	}
	return &a, nil
}

// GetByEmail retrieves an artisan by email. Returns nil when absent.
func (r *MongoArtisanRepo) GetByEmail(email string) (*models.Artisan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Artisan
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch artisan with email %s: %w", email, err)
	}
	return &a, nil
}

// Update modifies an existing artisan document.
func (r *MongoArtisanRepo) Update(a *models.Artisan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	filter := bson.M{"id": a.ID}
	update := bson.M{"$set": a}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update artisan with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("artisan with id %s not found", a.ID)
	}
	return nil
}

// SetStatus overwrites the approval status and returns the updated record.
func (r *MongoArtisanRepo) SetStatus(id string, status models.ArtisanStatus) (*models.Artisan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Artisan
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set status for artisan %s: %w", id, err)
	}
	return &a, nil
}

// SetRating overwrites the denormalized rating field.
func (r *MongoArtisanRepo) SetRating(id string, rating float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"rating": rating, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for artisan %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("artisan with id %s not found", id)
	}
	return nil
}

// Search lists approved artisans matching the filter, best rated first.
func (r *MongoArtisanRepo) Search(filter ArtisanFilter) ([]models.Artisan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": models.ArtisanApproved}
	if filter.SkillCategory != "" {
		query["skillCategory"] = filter.SkillCategory
	}
	if filter.Name != "" {
		query["fullName"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Name, Options: "i"}}
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Location, Options: "i"}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search artisans: %w", err)
	}
	defer cursor.Close(ctx)

	var artisans []models.Artisan
	for cursor.Next(ctx) {
		var a models.Artisan
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artisan: %w", err)
		}
		artisans = append(artisans, a)
	}
	return artisans, nil
}

// GetForAdmin lists pending and approved artisans, newest first.
func (r *MongoArtisanRepo) GetForAdmin() ([]models.Artisan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"status": bson.M{"$in": []models.ArtisanStatus{models.ArtisanPending, models.ArtisanApproved}}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artisans: %w", err)
	}
	defer cursor.Close(ctx)

	var artisans []models.Artisan
	for cursor.Next(ctx) {
		var a models.Artisan
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode artisan: %w", err)
		}
		artisans = append(artisans, a)
	}
	return artisans, nil
}

// Count returns the total number of artisans.
func (r *MongoArtisanRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count artisans: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of artisans in the given approval status.
func (r *MongoArtisanRepo) CountByStatus(status models.ArtisanStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count artisans by status: %w", err)
	}
	return count, nil
}

// PopularSkills aggregates artisan counts per skill category, most common first.
func (r *MongoArtisanRepo) PopularSkills(limit int) ([]models.SkillCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$skillCategory"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []models.SkillCount
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode popular skills: %w", err)
	}
	return skills, nil
}
