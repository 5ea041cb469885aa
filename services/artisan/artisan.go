package artisan

import (
	"fmt"
	"time"

	artisanRepo "artisanhub/database/repository/artisan"
	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// Register creates a new artisan account in the pending approval state and
// issues a JWT. A confirmation email is sent best-effort.
func (s *DefaultArtisanService) Register(a models.Artisan) (*AuthResponse, error) {
	if a.Email == "" || a.Password == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "email and password are required")
	}
	if a.FullName == "" || a.SkillCategory == "" || a.Location == "" || a.Phone == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument,
			"full name, skill category, location and phone are required")
	}

	existing, err := s.Repo.GetByEmail(a.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing artisan", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, utils.NewServiceError(utils.CodeConflict, "an artisan with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	a.PasswordHash = string(hashedPassword)
	a.Password = ""
	a.ID = uuid.New().String()
	a.Status = models.ArtisanPending
	a.Availability = true
	a.Rating = 0

	if err := s.Repo.Create(&a); err != nil {
		utils.GetLogger().Error("Failed to create artisan", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := utils.SendRegistrationReceivedEmail(a.Email, a.FullName); err != nil {
		utils.GetLogger().Warn("Failed to send registration email", zap.Error(err))
	}

	token, err := utils.GenerateToken(a.ID, string(models.RoleArtisan), tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &AuthResponse{
		ID:            a.ID,
		Token:         token,
		FullName:      a.FullName,
		SkillCategory: a.SkillCategory,
		Location:      a.Location,
		Rating:        a.Rating,
	}, nil
}

// Login authenticates an artisan. Accounts that are not yet approved are
// rejected even with valid credentials.
func (s *DefaultArtisanService) Login(email, password string) (*AuthResponse, error) {
	a, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch artisan for login", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid email or password")
	}
	if a.Status != models.ArtisanApproved {
		return nil, utils.NewServiceError(utils.CodeForbidden, "account not approved yet")
	}

	token, err := utils.GenerateToken(a.ID, string(models.RoleArtisan), tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &AuthResponse{
		ID:            a.ID,
		Token:         token,
		FullName:      a.FullName,
		SkillCategory: a.SkillCategory,
		Location:      a.Location,
		Rating:        a.Rating,
	}, nil
}

// UpdateProfile applies the non-empty fields of upd to the artisan record.
func (s *DefaultArtisanService) UpdateProfile(id string, upd ArtisanUpdate) (*models.Artisan, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artisan: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not found")
	}

	if upd.FullName != "" {
		a.FullName = upd.FullName
	}
	if upd.Phone != "" {
		a.Phone = upd.Phone
	}
	if upd.SkillCategory != "" {
		a.SkillCategory = upd.SkillCategory
	}
	if upd.Location != "" {
		a.Location = upd.Location
	}
	if upd.Description != "" {
		a.Description = upd.Description
	}
	if upd.ProfilePhoto != "" {
		a.ProfilePhoto = upd.ProfilePhoto
	}
	if len(upd.VerificationDocs) > 0 {
		a.VerificationDocs = upd.VerificationDocs
	}
	if upd.FCMToken != "" {
		a.FCMToken = upd.FCMToken
	}
	if upd.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("update failed: %w", err)
		}
		a.PasswordHash = string(hashedPassword)
	}

	if err := s.Repo.Update(a); err != nil {
		utils.GetLogger().Error("Failed to update artisan", zap.Error(err))
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return a, nil
}

// Search lists approved artisans matching the filter, best rated first.
func (s *DefaultArtisanService) Search(filter artisanRepo.ArtisanFilter) ([]models.Artisan, error) {
	artisans, err := s.Repo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search artisans: %w", err)
	}
	return artisans, nil
}

// GetApprovedByID fetches an approved artisan for public display.
func (s *DefaultArtisanService) GetApprovedByID(id string) (*models.Artisan, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artisan: %w", err)
	}
	if a == nil || a.Status != models.ArtisanApproved {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not found or not approved")
	}
	return a, nil
}
