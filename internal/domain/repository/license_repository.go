package repository

import (
	"context"
	"time"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
)

// LicenseRepository puerto de persistencia para License.
type LicenseRepository interface {
	Create(ctx context.Context, license *entity.License) (*entity.License, error)
	GetByID(ctx context.Context, id string) (*entity.License, error)
	Update(ctx context.Context, id string, in UpdateLicense) (*entity.License, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.License, error)
	ExpiringWithin(ctx context.Context, companyID string, days int) ([]*entity.License, error)
}

// UpdateLicense actualización parcial de una licencia. ClearExpiresAt en true
// borra el vencimiento (vuelve a NULL); ExpiresAt se ignora en ese caso.
type UpdateLicense struct {
	Name           *string
	Status         *string
	IsActive       *bool
	ExpiresAt      *time.Time
	ClearExpiresAt bool
}
