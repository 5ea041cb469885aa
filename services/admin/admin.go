package admin

import (
	"fmt"
	"time"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Bootstrap creates the configured admin account when no admin with that
// email exists. Admins have no registration endpoint; this is the only way an
// admin document ever gets created.
func (s *DefaultAdminService) Bootstrap(name, email, password string) error {
	if email == "" || password == "" {
		utils.GetLogger().Warn("Admin bootstrap skipped: ADMIN_EMAIL / ADMIN_PASSWORD not configured")
		return nil
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	a := &models.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(a); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	utils.GetLogger().Info("Admin account bootstrapped", zap.String("email", email))
	return nil
}

// Login authenticates an admin by email and password and issues a JWT.
func (s *DefaultAdminService) Login(email, password string) (*AuthResponse, error) {
	a, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch admin for login", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid credentials")
	}

	token, err := utils.GenerateToken(a.ID, string(models.RoleAdmin), tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &AuthResponse{ID: a.ID, Token: token, Name: a.Name, Email: a.Email}, nil
}

// Analytics assembles the dashboard counters and the top-5 skill categories.
func (s *DefaultAdminService) Analytics() (*models.Analytics, error) {
	artisanCount, err := s.Artisans.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count artisans: %w", err)
	}
	bookingCount, err := s.Bookings.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	approvedCount, err := s.Artisans.CountByStatus(models.ArtisanApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved artisans: %w", err)
	}
	pendingCount, err := s.Artisans.CountByStatus(models.ArtisanPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending artisans: %w", err)
	}
	studentCount, err := s.Students.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	popularSkills, err := s.Artisans.PopularSkills(5)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular skills: %w", err)
	}

	return &models.Analytics{
		ArtisanCount:         artisanCount,
		BookingCount:         bookingCount,
		ApprovedArtisanCount: approvedCount,
		PendingArtisanCount:  pendingCount,
		StudentCount:         studentCount,
		PopularSkills:        popularSkills,
	}, nil
}
