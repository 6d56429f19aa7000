package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/application/usecase"
	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

// fakeLicenseRepo fake del puerto LicenseRepository, campos función como el
// resto de los fakes del paquete.
type fakeLicenseRepo struct {
	createFn   func(ctx context.Context, l *entity.License) (*entity.License, error)
	getByIDFn  func(ctx context.Context, id string) (*entity.License, error)
	updateFn   func(ctx context.Context, id string, in repository.UpdateLicense) (*entity.License, error)
	deleteFn   func(ctx context.Context, id string) (bool, error)
	listFn     func(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error)
	expiringFn func(ctx context.Context, companyID string, days int) ([]*entity.License, error)
}

var _ repository.LicenseRepository = (*fakeLicenseRepo)(nil)

func (f *fakeLicenseRepo) Create(ctx context.Context, l *entity.License) (*entity.License, error) {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	l.ID = "l-generated"
	return l, nil
}

func (f *fakeLicenseRepo) GetByID(ctx context.Context, id string) (*entity.License, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeLicenseRepo) Update(ctx context.Context, id string, in repository.UpdateLicense) (*entity.License, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, in)
	}
	return nil, nil
}

func (f *fakeLicenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return false, nil
}

func (f *fakeLicenseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error) {
	if f.listFn != nil {
		return f.listFn(ctx, companyID, limit, offset)
	}
	return nil, nil
}

func (f *fakeLicenseRepo) ExpiringWithin(ctx context.Context, companyID string, days int) ([]*entity.License, error) {
	if f.expiringFn != nil {
		return f.expiringFn(ctx, companyID, days)
	}
	return nil, nil
}

func licenseFixture(id, companyID string) *entity.License {
	return &entity.License{
		ID:        id,
		CompanyID: companyID,
		Name:      "Licencia de operación",
		Status:    "valid",
		IsActive:  true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseCreate_NombreRequerido(t *testing.T) {
	uc := usecase.NewLicenseUseCase(&fakeLicenseRepo{}, companyRepoConEmpresa("c-1", nil, nil))

	_, err := uc.Create(context.Background(), "c-1", dto.CreateLicenseRequest{Status: "valid"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestLicenseCreate_EmpresaInexistente(t *testing.T) {
	uc := usecase.NewLicenseUseCase(&fakeLicenseRepo{}, companyRepoConEmpresa("c-1", nil, nil))

	_, err := uc.Create(context.Background(), "c-desconocida", dto.CreateLicenseRequest{Name: "Sanitaria"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLicenseCreate_DisparaResyncDeContadores(t *testing.T) {
	var refreshed []string
	uc := usecase.NewLicenseUseCase(&fakeLicenseRepo{}, companyRepoConEmpresa("c-1", &refreshed, nil))

	out, err := uc.Create(context.Background(), "c-1", dto.CreateLicenseRequest{Name: "Sanitaria"})

	require.NoError(t, err)
	assert.True(t, out.IsActive, "sin is_active explícito la licencia nace activa")
	assert.Equal(t, []string{"c-1"}, refreshed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewLicenseUseCase(&fakeLicenseRepo{}, &fakeCompanyRepo{})

	nombre := "Renovada"
	_, err := uc.Update(context.Background(), "l-404", dto.UpdateLicenseRequest{Name: &nombre})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// clear_expires_at debe llegar al parche del repositorio: es el único camino
// para volver el vencimiento a NULL (un null JSON en expires_at es
// indistinguible de un campo ausente).
func TestLicenseUpdate_ClearExpiresAtLlegaAlParche(t *testing.T) {
	var got repository.UpdateLicense
	repo := &fakeLicenseRepo{
		updateFn: func(_ context.Context, id string, in repository.UpdateLicense) (*entity.License, error) {
			got = in
			return licenseFixture(id, "c-1"), nil
		},
	}
	uc := usecase.NewLicenseUseCase(repo, &fakeCompanyRepo{})

	vence := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	_, err := uc.Update(context.Background(), "l-1", dto.UpdateLicenseRequest{
		ExpiresAt:      &vence,
		ClearExpiresAt: true,
	})

	require.NoError(t, err)
	assert.True(t, got.ClearExpiresAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseDelete_ResyncSobreLaEmpresaDuena(t *testing.T) {
	var refreshed []string
	repo := &fakeLicenseRepo{
		getByIDFn: func(_ context.Context, id string) (*entity.License, error) {
			return licenseFixture(id, "c-7"), nil
		},
		deleteFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
	}
	uc := usecase.NewLicenseUseCase(repo, companyRepoConEmpresa("c-7", &refreshed, nil))

	require.NoError(t, uc.Delete(context.Background(), "l-1"))
	assert.Equal(t, []string{"c-7"}, refreshed)
}

func TestLicenseDelete_Inexistente(t *testing.T) {
	uc := usecase.NewLicenseUseCase(&fakeLicenseRepo{}, &fakeCompanyRepo{})

	assert.ErrorIs(t, uc.Delete(context.Background(), "l-404"), domain.ErrNotFound)
}

// El fallo del resync no deshace el borrado ni se propaga al llamador.
func TestLicenseDelete_ResyncCaidoNoSePropaga(t *testing.T) {
	var refreshed []string
	repo := &fakeLicenseRepo{
		getByIDFn: func(_ context.Context, id string) (*entity.License, error) {
			return licenseFixture(id, "c-7"), nil
		},
		deleteFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
	}
	uc := usecase.NewLicenseUseCase(repo, companyRepoConEmpresa("c-7", &refreshed, errors.New("resync caído")))

	assert.NoError(t, uc.Delete(context.Background(), "l-1"))
	assert.Len(t, refreshed, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Expiring / ListByCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseExpiring_UmbralPorDefecto(t *testing.T) {
	var gotDays int
	repo := &fakeLicenseRepo{
		expiringFn: func(_ context.Context, _ string, days int) ([]*entity.License, error) {
			gotDays = days
			return nil, nil
		},
	}
	uc := usecase.NewLicenseUseCase(repo, &fakeCompanyRepo{})

	out, err := uc.Expiring(context.Background(), "c-1", 0)

	require.NoError(t, err)
	assert.Equal(t, 30, gotDays, "días <= 0 cae al umbral de 30")
	assert.NotNil(t, out, "sin resultados la lista es vacía, no nil")
}

func TestLicenseListByCompany_PaginaEnLaRespuesta(t *testing.T) {
	repo := &fakeLicenseRepo{
		listFn: func(_ context.Context, _ string, _, _ int) ([]*entity.License, error) {
			return []*entity.License{licenseFixture("l-1", "c-1")}, nil
		},
	}
	uc := usecase.NewLicenseUseCase(repo, &fakeCompanyRepo{})

	out, err := uc.ListByCompany(context.Background(), "c-1", 10, 20)

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, dto.MakePage(10, 20), out.Page)
}
