package admin

import (
	"errors"
	"testing"

	"artisanhub/models"
	"artisanhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) Create(a *models.Admin) error {
	cp := *a
	r.admins[a.Email] = &cp
	return nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.True(t, errors.As(err, &svcErr), "expected a service error, got %v", err)
	assert.Equal(t, code, svcErr.Code)
}

func TestBootstrapCreatesAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}

	err := svc.Bootstrap("Super Admin", "admin@artisanhub.test", "s3cret")
	require.NoError(t, err)

	a, err := repo.GetByEmail("admin@artisanhub.test")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Super Admin", a.Name)
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, a.PasswordHash)
	assert.NotEqual(t, "s3cret", a.PasswordHash)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}

	require.NoError(t, svc.Bootstrap("Super Admin", "admin@artisanhub.test", "s3cret"))
	first, _ := repo.GetByEmail("admin@artisanhub.test")

	require.NoError(t, svc.Bootstrap("Someone Else", "admin@artisanhub.test", "other"))
	second, _ := repo.GetByEmail("admin@artisanhub.test")

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestBootstrapSkippedWithoutCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}

	require.NoError(t, svc.Bootstrap("Super Admin", "", ""))
	assert.Empty(t, repo.admins)
}

func TestLoginAfterBootstrap(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}
	require.NoError(t, svc.Bootstrap("Super Admin", "admin@artisanhub.test", "s3cret"))

	resp, err := svc.Login("admin@artisanhub.test", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@artisanhub.test", resp.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}
	require.NoError(t, svc.Bootstrap("Super Admin", "admin@artisanhub.test", "s3cret"))

	_, err := svc.Login("admin@artisanhub.test", "wrong")
	assertCode(t, err, utils.CodeForbidden)
}

func TestLoginUnknownAdmin(t *testing.T) {
	svc := &DefaultAdminService{Repo: newFakeAdminRepo()}

	_, err := svc.Login("nobody@artisanhub.test", "s3cret")
	assertCode(t, err, utils.CodeForbidden)
}
