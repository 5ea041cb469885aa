package artisan

import (
	"errors"
	"testing"

	artisanRepo "artisanhub/database/repository/artisan"
	"artisanhub/models"
	"artisanhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubArtisanRepo serves GetByID and Update from a map; the embedded interface
// panics on anything the portfolio paths never call.
type stubArtisanRepo struct {
	artisanRepo.ArtisanRepository
	artisans map[string]*models.Artisan
}

func (r *stubArtisanRepo) GetByID(id string) (*models.Artisan, error) {
	a, ok := r.artisans[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *stubArtisanRepo) Update(a *models.Artisan) error {
	cp := *a
	r.artisans[a.ID] = &cp
	return nil
}

func newPortfolioService() (*DefaultArtisanService, *stubArtisanRepo) {
	repo := &stubArtisanRepo{artisans: map[string]*models.Artisan{
		"artisan-1": {
			ID:     "artisan-1",
			Status: models.ArtisanApproved,
			PreviousWorks: []models.PreviousWork{
				{ID: "w1", Title: "Wardrobe restoration"},
				{ID: "w2", Title: "Custom shelving"},
			},
		},
		"artisan-pending": {
			ID:     "artisan-pending",
			Status: models.ArtisanPending,
			PreviousWorks: []models.PreviousWork{
				{ID: "w3", Title: "Hidden work"},
			},
		},
	}}
	return &DefaultArtisanService{Repo: repo}, repo
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.True(t, errors.As(err, &svcErr), "expected a service error, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestGetPublicPreviousWork(t *testing.T) {
	svc, _ := newPortfolioService()

	work, err := svc.GetPublicPreviousWork("artisan-1", "w2")
	require.NoError(t, err)
	assert.Equal(t, "Custom shelving", work.Title)
}

func TestGetPublicPreviousWorkUnknownEntry(t *testing.T) {
	svc, _ := newPortfolioService()

	_, err := svc.GetPublicPreviousWork("artisan-1", "missing")
	assertCode(t, err, utils.CodeNotFound)
}

func TestGetPublicPreviousWorkUnapprovedArtisan(t *testing.T) {
	svc, _ := newPortfolioService()

	_, err := svc.GetPublicPreviousWork("artisan-pending", "w3")
	assertCode(t, err, utils.CodeNotFound)

	_, err = svc.GetPublicPreviousWorks("artisan-pending")
	assertCode(t, err, utils.CodeNotFound)
}

func TestPortfolioAddUpdateDelete(t *testing.T) {
	svc, repo := newPortfolioService()

	work, err := svc.AddPreviousWork("artisan-1", PreviousWorkInput{Title: "Garden bench"})
	require.NoError(t, err)
	assert.NotEmpty(t, work.ID)

	updated, err := svc.UpdatePreviousWork("artisan-1", work.ID, PreviousWorkInput{Description: "Oak, outdoor finish"})
	require.NoError(t, err)
	assert.Equal(t, "Garden bench", updated.Title)
	assert.Equal(t, "Oak, outdoor finish", updated.Description)

	require.NoError(t, svc.DeletePreviousWork("artisan-1", work.ID))
	assert.Len(t, repo.artisans["artisan-1"].PreviousWorks, 2)

	_, err = svc.GetPreviousWork("artisan-1", work.ID)
	assertCode(t, err, utils.CodeNotFound)
}
