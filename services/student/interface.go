package student

import (
	studentRepo "artisanhub/database/repository/student"
	"artisanhub/models"
)

// AuthResponse is returned by register and login with a fresh JWT.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// StudentUpdate carries the mutable profile fields. Nil-equivalent (empty)
// fields are left untouched.
type StudentUpdate struct {
	Name       string `json:"name,omitempty"`
	Password   string `json:"password,omitempty"`
	Faculty    string `json:"faculty,omitempty"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
	FCMToken   string `json:"fcmToken,omitempty"`
}

// StudentService manages student accounts.
type StudentService interface {
	Register(s models.Student) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.Student, error)
	UpdateProfile(id string, upd StudentUpdate) (*models.Student, error)
	GetAll() ([]models.Student, error)
	Delete(id string) error
}

// DefaultStudentService implements StudentService.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}
