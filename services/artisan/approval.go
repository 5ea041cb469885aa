package artisan

import (
	"context"
	"fmt"

	"artisanhub/models"
	"artisanhub/utils"

	"go.uber.org/zap"
)

// Approve marks an artisan account as approved and notifies the artisan.
func (s *DefaultArtisanService) Approve(id string) (*models.Artisan, error) {
	a, err := s.Repo.SetStatus(id, models.ArtisanApproved)
	if err != nil {
		utils.GetLogger().Error("Failed to approve artisan", zap.Error(err))
		return nil, fmt.Errorf("failed to approve artisan: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not found")
	}

	if err := utils.SendAccountApprovedEmail(a.Email, a.FullName); err != nil {
		utils.GetLogger().Warn("Failed to send approval email", zap.Error(err))
	}
	s.Notifier.Notify(context.Background(), a.ID, "Your artisan account has been approved!")

	return a, nil
}

// Reject marks an artisan account as rejected and notifies the artisan.
func (s *DefaultArtisanService) Reject(id string) (*models.Artisan, error) {
	a, err := s.Repo.SetStatus(id, models.ArtisanRejected)
	if err != nil {
		utils.GetLogger().Error("Failed to reject artisan", zap.Error(err))
		return nil, fmt.Errorf("failed to reject artisan: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not found")
	}

	if err := utils.SendAccountRejectedEmail(a.Email, a.FullName); err != nil {
		utils.GetLogger().Warn("Failed to send rejection email", zap.Error(err))
	}
	s.Notifier.Notify(context.Background(), a.ID, "Your artisan account was rejected.")

	return a, nil
}

// GetForAdmin lists pending and approved artisans, newest first.
func (s *DefaultArtisanService) GetForAdmin() ([]models.Artisan, error) {
	artisans, err := s.Repo.GetForAdmin()
	if err != nil {
		return nil, fmt.Errorf("failed to list artisans: %w", err)
	}
	return artisans, nil
}
