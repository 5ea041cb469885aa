package artisanRepo

import "artisanhub/models"

// ArtisanFilter restricts Search to approved artisans matching the given
// criteria. Empty fields are ignored; Name and Location match case-insensitively.
type ArtisanFilter struct {
	SkillCategory string
	Name          string
	Location      string
}

// ArtisanRepository defines persistence operations for artisan accounts.
type ArtisanRepository interface {
	Create(a *models.Artisan) error
	GetByID(id string) (*models.Artisan, error)
	GetByEmail(email string) (*models.Artisan, error)
	Update(a *models.Artisan) error
	// SetStatus overwrites the approval status and returns the updated record.
	SetStatus(id string, status models.ArtisanStatus) (*models.Artisan, error)
	// SetRating overwrites the denormalized rating field.
	SetRating(id string, rating float64) error
	// Search lists approved artisans matching the filter, best rated first.
	Search(filter ArtisanFilter) ([]models.Artisan, error)
	// GetForAdmin lists pending and approved artisans, newest first.
	GetForAdmin() ([]models.Artisan, error)
	Count() (int64, error)
	CountByStatus(status models.ArtisanStatus) (int64, error)
	// PopularSkills aggregates artisan counts per skill category.
	PopularSkills(limit int) ([]models.SkillCount, error)
}
