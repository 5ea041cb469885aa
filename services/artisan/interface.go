package artisan

import (
	artisanRepo "artisanhub/database/repository/artisan"
	"artisanhub/models"
	"artisanhub/services/notification"
)

// AuthResponse is returned by register and login with a fresh JWT.
type AuthResponse struct {
	ID            string  `json:"id"`
	Token         string  `json:"token"`
	FullName      string  `json:"fullName,omitempty"`
	SkillCategory string  `json:"skillCategory,omitempty"`
	Location      string  `json:"location,omitempty"`
	Rating        float64 `json:"rating"`
}

// ArtisanUpdate carries the mutable profile fields; empty fields are ignored.
type ArtisanUpdate struct {
	FullName         string   `json:"fullName,omitempty"`
	Password         string   `json:"password,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	SkillCategory    string   `json:"skillCategory,omitempty"`
	Location         string   `json:"location,omitempty"`
	Description      string   `json:"description,omitempty"`
	ProfilePhoto     string   `json:"profilePhoto,omitempty"`
	VerificationDocs []string `json:"verificationDocs,omitempty"`
	FCMToken         string   `json:"fcmToken,omitempty"`
}

// PreviousWorkInput carries the fields of a portfolio entry.
type PreviousWorkInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ArtisanService manages artisan accounts, their approval lifecycle and their
// portfolio of previous works.
type ArtisanService interface {
	Register(a models.Artisan) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	UpdateProfile(id string, upd ArtisanUpdate) (*models.Artisan, error)

	// Public discovery: approved artisans only.
	Search(filter artisanRepo.ArtisanFilter) ([]models.Artisan, error)
	GetApprovedByID(id string) (*models.Artisan, error)

	// Admin approval flow.
	Approve(id string) (*models.Artisan, error)
	Reject(id string) (*models.Artisan, error)
	GetForAdmin() ([]models.Artisan, error)

	// Portfolio.
	AddPreviousWork(artisanID string, in PreviousWorkInput) (*models.PreviousWork, error)
	GetPreviousWorks(artisanID string) ([]models.PreviousWork, error)
	GetPreviousWork(artisanID, workID string) (*models.PreviousWork, error)
	UpdatePreviousWork(artisanID, workID string, in PreviousWorkInput) (*models.PreviousWork, error)
	DeletePreviousWork(artisanID, workID string) error
	GetPublicPreviousWorks(artisanID string) ([]models.PreviousWork, error)
	GetPublicPreviousWork(artisanID, workID string) (*models.PreviousWork, error)
}

// DefaultArtisanService implements ArtisanService.
type DefaultArtisanService struct {
	Repo     artisanRepo.ArtisanRepository
	Notifier notification.Notifier
}
