package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a member of the status enum.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingAccepted, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Booking represents one service engagement between a student and an artisan.
// StudentID, ArtisanID and JobDetails are immutable after creation; only Status
// (and UpdatedAt) change, via the booking service's transition rules.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	StudentID     string        `bson:"studentId" json:"studentId"`
	ArtisanID     string        `bson:"artisanId" json:"artisanId"`
	Status        BookingStatus `bson:"status" json:"status"`
	JobDetails    string        `bson:"jobDetails" json:"jobDetails"`
	ScheduledDate *time.Time    `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
