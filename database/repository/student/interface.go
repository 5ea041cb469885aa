package studentRepo

import "artisanhub/models"

// StudentRepository defines persistence operations for student accounts.
type StudentRepository interface {
	Create(s *models.Student) error
	GetByID(id string) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	Update(s *models.Student) error
	GetAll() ([]models.Student, error)
	Delete(id string) error
	Count() (int64, error)
}
