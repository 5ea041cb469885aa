package student

import (
	"fmt"
	"time"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// Register creates a new student account and issues a JWT.
func (s *DefaultStudentService) Register(st models.Student) (*AuthResponse, error) {
	if st.Email == "" || st.Password == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "email and password are required")
	}
	if st.Name == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "name is required")
	}

	existing, err := s.Repo.GetByEmail(st.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing student", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, utils.NewServiceError(utils.CodeConflict, "a student with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(st.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	st.PasswordHash = string(hashedPassword)
	st.Password = ""
	st.ID = uuid.New().String()

	if err := s.Repo.Create(&st); err != nil {
		utils.GetLogger().Error("Failed to create student", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	token, err := utils.GenerateToken(st.ID, string(models.RoleStudent), tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &AuthResponse{ID: st.ID, Token: token, Name: st.Name, Email: st.Email}, nil
}

// Login authenticates a student by email and password and issues a JWT.
func (s *DefaultStudentService) Login(email, password string) (*AuthResponse, error) {
	st, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch student for login", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if st == nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) != nil {
		return nil, utils.NewServiceError(utils.CodeForbidden, "invalid email or password")
	}

	token, err := utils.GenerateToken(st.ID, string(models.RoleStudent), tokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &AuthResponse{ID: st.ID, Token: token, Name: st.Name, Email: st.Email}, nil
}

// GetByID fetches a student by id.
func (s *DefaultStudentService) GetByID(id string) (*models.Student, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	if st == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "student not found")
	}
	return st, nil
}

// UpdateProfile applies the non-empty fields of upd to the student record.
func (s *DefaultStudentService) UpdateProfile(id string, upd StudentUpdate) (*models.Student, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	if st == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "student not found")
	}

	if upd.Name != "" {
		st.Name = upd.Name
	}
	if upd.Faculty != "" {
		st.Faculty = upd.Faculty
	}
	if upd.Department != "" {
		st.Department = upd.Department
	}
	if upd.Phone != "" {
		st.Phone = upd.Phone
	}
	if upd.FCMToken != "" {
		st.FCMToken = upd.FCMToken
	}
	if upd.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("update failed: %w", err)
		}
		st.PasswordHash = string(hashedPassword)
	}

	if err := s.Repo.Update(st); err != nil {
		utils.GetLogger().Error("Failed to update student", zap.Error(err))
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return st, nil
}

// GetAll lists every student account.
func (s *DefaultStudentService) GetAll() ([]models.Student, error) {
	students, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// Delete removes a student account.
func (s *DefaultStudentService) Delete(id string) error {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch student: %w", err)
	}
	if st == nil {
		return utils.NewServiceError(utils.CodeNotFound, "student not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
