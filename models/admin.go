package models

import "time"

// Admin is a back-office operator account.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// SkillCount is one bucket of the popular-skills aggregation.
type SkillCount struct {
	Skill string `bson:"_id" json:"skill"`
	Count int64  `bson:"count" json:"count"`
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	ArtisanCount         int64        `json:"artisanCount"`
	BookingCount         int64        `json:"bookingCount"`
	ApprovedArtisanCount int64        `json:"approvedArtisanCount"`
	PendingArtisanCount  int64        `json:"pendingArtisanCount"`
	StudentCount         int64        `json:"studentCount"`
	PopularSkills        []SkillCount `json:"popularSkills"`
}
