package admin

import (
	adminRepo "artisanhub/database/repository/admin"
	artisanRepo "artisanhub/database/repository/artisan"
	bookingRepo "artisanhub/database/repository/booking"
	studentRepo "artisanhub/database/repository/student"
	"artisanhub/models"
)

// AuthResponse is returned by admin login with a fresh JWT.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AdminService covers back-office operations: bootstrap, login and platform
// analytics.
type AdminService interface {
	// Bootstrap seeds the configured admin account if it does not exist yet.
	Bootstrap(name, email, password string) error
	Login(email, password string) (*AuthResponse, error)
	Analytics() (*models.Analytics, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Repo     adminRepo.AdminRepository
	Artisans artisanRepo.ArtisanRepository
	Students studentRepo.StudentRepository
	Bookings bookingRepo.BookingRepository
}
