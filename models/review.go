package models

import "time"

// Review is a one-time rating plus text submitted by a student against a
// completed booking. Immutable once created; at most one review exists per
// (studentId, bookingId) pair, enforced by a unique index.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	StudentID  string    `bson:"studentId" json:"studentId"`
	ArtisanID  string    `bson:"artisanId" json:"artisanId"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	Rating     int       `bson:"rating" json:"rating"`
	ReviewText string    `bson:"reviewText" json:"reviewText"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
