package artisan

import (
	"fmt"
	"time"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/google/uuid"
)

func (s *DefaultArtisanService) loadOwn(artisanID string) (*models.Artisan, error) {
	a, err := s.Repo.GetByID(artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artisan: %w", err)
	}
	if a == nil {
		return nil, utils.NewServiceError(utils.CodeNotFound, "artisan not found")
	}
	return a, nil
}

// AddPreviousWork appends a portfolio entry to the artisan's record.
func (s *DefaultArtisanService) AddPreviousWork(artisanID string, in PreviousWorkInput) (*models.PreviousWork, error) {
	if in.Title == "" {
		return nil, utils.NewServiceError(utils.CodeInvalidArgument, "title is required")
	}

	a, err := s.loadOwn(artisanID)
	if err != nil {
		return nil, err
	}

	work := models.PreviousWork{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   time.Now(),
	}
	a.PreviousWorks = append(a.PreviousWorks, work)

	if err := s.Repo.Update(a); err != nil {
		return nil, fmt.Errorf("failed to save previous work: %w", err)
	}
	return &work, nil
}

// GetPreviousWorks lists the artisan's own portfolio entries.
func (s *DefaultArtisanService) GetPreviousWorks(artisanID string) ([]models.PreviousWork, error) {
	a, err := s.loadOwn(artisanID)
	if err != nil {
		return nil, err
	}
	return a.PreviousWorks, nil
}

// GetPreviousWork fetches one of the artisan's own portfolio entries.
func (s *DefaultArtisanService) GetPreviousWork(artisanID, workID string) (*models.PreviousWork, error) {
	a, err := s.loadOwn(artisanID)
	if err != nil {
		return nil, err
	}
	for i := range a.PreviousWorks {
		if a.PreviousWorks[i].ID == workID {
			return &a.PreviousWorks[i], nil
		}
	}
	return nil, utils.NewServiceError(utils.CodeNotFound, "previous work not found")
}

// UpdatePreviousWork applies the non-empty fields of in to a portfolio entry.
func (s *DefaultArtisanService) UpdatePreviousWork(artisanID, workID string, in PreviousWorkInput) (*models.PreviousWork, error) {
	a, err := s.loadOwn(artisanID)
	if err != nil {
		return nil, err
	}

	for i := range a.PreviousWorks {
		if a.PreviousWorks[i].ID != workID {
			continue
		}
		if in.Title != "" {
			a.PreviousWorks[i].Title = in.Title
		}
		if in.Description != "" {
			a.PreviousWorks[i].Description = in.Description
		}
		if in.Image != "" {
			a.PreviousWorks[i].Image = in.Image
		}
		if err := s.Repo.Update(a); err != nil {
			return nil, fmt.Errorf("failed to save previous work: %w", err)
		}
		return &a.PreviousWorks[i], nil
	}
	return nil, utils.NewServiceError(utils.CodeNotFound, "previous work not found")
}

// DeletePreviousWork removes a portfolio entry from the artisan's record.
func (s *DefaultArtisanService) DeletePreviousWork(artisanID, workID string) error {
	a, err := s.loadOwn(artisanID)
	if err != nil {
		return err
	}

	for i := range a.PreviousWorks {
		if a.PreviousWorks[i].ID == workID {
			a.PreviousWorks = append(a.PreviousWorks[:i], a.PreviousWorks[i+1:]...)
			if err := s.Repo.Update(a); err != nil {
				return fmt.Errorf("failed to delete previous work: %w", err)
			}
			return nil
		}
	}
	return utils.NewServiceError(utils.CodeNotFound, "previous work not found")
}

// GetPublicPreviousWorks lists the portfolio of an approved artisan.
func (s *DefaultArtisanService) GetPublicPreviousWorks(artisanID string) ([]models.PreviousWork, error) {
	a, err := s.GetApprovedByID(artisanID)
	if err != nil {
		return nil, err
	}
	return a.PreviousWorks, nil
}

// GetPublicPreviousWork fetches one portfolio entry of an approved artisan.
func (s *DefaultArtisanService) GetPublicPreviousWork(artisanID, workID string) (*models.PreviousWork, error) {
	a, err := s.GetApprovedByID(artisanID)
	if err != nil {
		return nil, err
	}
	for i := range a.PreviousWorks {
		if a.PreviousWorks[i].ID == workID {
			return &a.PreviousWorks[i], nil
		}
	}
	return nil, utils.NewServiceError(utils.CodeNotFound, "previous work not found")
}
