package models

import "time"

// Student is the party initiating bookings.
type Student struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Faculty      string    `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Department   string    `bson:"department,omitempty" json:"department,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
