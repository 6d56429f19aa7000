package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

var licenseColumns = []string{
	"id", "company_id", "name", "status", "is_active",
	"expires_at", "created_at", "updated_at",
}

// LicenseRepo implementación de LicenseRepository (usable con pool o tx).
type LicenseRepo struct {
	*Repo[entity.License]
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{Repo: NewRepo[entity.License](q, "licenses", "id", licenseColumns)}
}

// Create persiste una nueva licencia.
func (r *LicenseRepo) Create(ctx context.Context, l *entity.License) (*entity.License, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Status == "" {
		l.Status = "valid"
	}
	return r.Repo.Create(ctx, []Assign{
		Set("id", l.ID),
		Set("company_id", l.CompanyID),
		Set("name", l.Name),
		Set("status", l.Status),
		Set("is_active", l.IsActive),
		Set("expires_at", l.ExpiresAt),
	})
}

// GetByID obtiene una licencia por ID. (nil, nil) si no existe.
func (r *LicenseRepo) GetByID(ctx context.Context, id string) (*entity.License, error) {
	return r.FindByID(ctx, id)
}

// Update actualización parcial; sella updated_at. (nil, nil) si no existe.
func (r *LicenseRepo) Update(ctx context.Context, id string, in repository.UpdateLicense) (*entity.License, error) {
	var fields []Assign
	if in.Name != nil {
		fields = append(fields, Set("name", *in.Name))
	}
	if in.Status != nil {
		fields = append(fields, Set("status", *in.Status))
	}
	if in.IsActive != nil {
		fields = append(fields, Set("is_active", *in.IsActive))
	}
	switch {
	case in.ClearExpiresAt:
		fields = append(fields, Set("expires_at", nil))
	case in.ExpiresAt != nil:
		fields = append(fields, Set("expires_at", *in.ExpiresAt))
	}
	return r.Repo.Update(ctx, id, fields)
}

// ListByCompany licencias de una empresa, las de vencimiento más próximo primero.
func (r *LicenseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error) {
	return r.FindAll(ctx, QueryOptions{
		Where:   []Cond{Eq("company_id", companyID)},
		OrderBy: "expires_at NULLS LAST",
		Limit:   limit,
		Offset:  offset,
	})
}

// ExpiringWithin licencias activas de la empresa que vencen en los próximos
// days días (frontera inclusiva, igual que el agregado por empresa).
func (r *LicenseRepo) ExpiringWithin(ctx context.Context, companyID string, days int) ([]*entity.License, error) {
	const query = `
		SELECT id, company_id, name, status, is_active, expires_at, created_at, updated_at
		FROM licenses
		WHERE company_id = $1
		  AND is_active
		  AND expires_at IS NOT NULL
		  AND expires_at <= (CURRENT_DATE + $2::int)
		ORDER BY expires_at ASC`
	return r.queryAll(ctx, query, []any{companyID, days})
}
