package models

import "time"

// ArtisanStatus is the admin approval state of an artisan account.
type ArtisanStatus string

const (
	ArtisanPending  ArtisanStatus = "pending"
	ArtisanApproved ArtisanStatus = "approved"
	ArtisanRejected ArtisanStatus = "rejected"
)

// PreviousWork is a portfolio entry embedded in the artisan document.
type PreviousWork struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"` // Cloudinary URL
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Artisan is a service professional. Rating is derived: it always equals the
// arithmetic mean of all review ratings referencing this artisan and is
// overwritten by the review service on every submission.
type Artisan struct {
	ID                string         `bson:"id" json:"id"`
	FullName          string         `bson:"fullName" json:"fullName"`
	Description       string         `bson:"description,omitempty" json:"description,omitempty"`
	SkillCategory     string         `bson:"skillCategory" json:"skillCategory"`
	Phone             string         `bson:"phone" json:"phone"`
	Availability      bool           `bson:"availability" json:"availability"`
	Location          string         `bson:"location" json:"location"`
	YearsOfExperience int            `bson:"yearsOfExperience" json:"yearsOfExperience"`
	ProfilePhoto      string         `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	VerificationDocs  []string       `bson:"verificationDocs,omitempty" json:"verificationDocs,omitempty"`
	Email             string         `bson:"email" json:"email"`
	Password          string         `bson:"-" json:"password,omitempty"`
	PasswordHash      string         `bson:"passwordHash" json:"-"`
	Status            ArtisanStatus  `bson:"status" json:"status"`
	Rating            float64        `bson:"rating" json:"rating"`
	PreviousWorks     []PreviousWork `bson:"previousWorks,omitempty" json:"previousWorks,omitempty"`
	FCMToken          string         `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt         time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updatedAt" json:"updatedAt"`
}
