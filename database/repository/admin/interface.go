package adminRepo

import "artisanhub/models"

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	Create(a *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
}
