package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

// LicenseUseCase casos de uso de licencias. Igual que los empleados, cada alta
// o baja dispara el resync de contadores de la empresa.
type LicenseUseCase struct {
	repo        repository.LicenseRepository
	companyRepo repository.CompanyRepository
}

// NewLicenseUseCase construye el caso de uso de licencias.
func NewLicenseUseCase(repo repository.LicenseRepository, companyRepo repository.CompanyRepository) *LicenseUseCase {
	return &LicenseUseCase{repo: repo, companyRepo: companyRepo}
}

// Create registra una licencia para la empresa.
func (uc *LicenseUseCase) Create(ctx context.Context, companyID string, in dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	if err := domain.ValidateRequired(map[string]string{"name": in.Name}); err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	license, err := uc.repo.Create(ctx, &entity.License{
		CompanyID: companyID,
		Name:      in.Name,
		Status:    in.Status,
		IsActive:  isActive,
		ExpiresAt: in.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	uc.refreshCompanyStats(ctx, companyID)
	return toLicenseResponse(license), nil
}

// GetByID obtiene una licencia. domain.ErrNotFound si no existe.
func (uc *LicenseUseCase) GetByID(ctx context.Context, id string) (*dto.LicenseResponse, error) {
	license, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	return toLicenseResponse(license), nil
}

// Update actualización parcial de la licencia.
func (uc *LicenseUseCase) Update(ctx context.Context, id string, in dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	license, err := uc.repo.Update(ctx, id, repository.UpdateLicense{
		Name:           in.Name,
		Status:         in.Status,
		IsActive:       in.IsActive,
		ExpiresAt:      in.ExpiresAt,
		ClearExpiresAt: in.ClearExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	return toLicenseResponse(license), nil
}

// Delete elimina la licencia y dispara el resync de contadores.
func (uc *LicenseUseCase) Delete(ctx context.Context, id string) error {
	license, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if license == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.refreshCompanyStats(ctx, license.CompanyID)
	return nil
}

// ListByCompany licencias de una empresa con paginación.
func (uc *LicenseUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) (*dto.LicenseListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLicenseResponse(l))
	}
	return &dto.LicenseListResponse{
		Items: items,
		Page:  dto.MakePage(limit, offset),
	}, nil
}

// Expiring licencias activas de la empresa que vencen en los próximos days días.
func (uc *LicenseUseCase) Expiring(ctx context.Context, companyID string, days int) ([]dto.LicenseResponse, error) {
	if days <= 0 {
		days = 30
	}
	list, err := uc.repo.ExpiringWithin(ctx, companyID, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLicenseResponse(l))
	}
	return out, nil
}

func (uc *LicenseUseCase) refreshCompanyStats(ctx context.Context, companyID string) {
	if err := uc.companyRepo.RefreshStats(ctx, companyID); err != nil {
		log.Warn().Err(err).Str("company_id", companyID).Msg("resync de contadores falló")
	}
}

func toLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Name:      l.Name,
		Status:    l.Status,
		IsActive:  l.IsActive,
		ExpiresAt: l.ExpiresAt,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
