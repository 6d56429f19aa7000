package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
//
// Convención de ausencia: los Get* devuelven (nil, nil) cuando no hay fila,
// nunca un error — ErrNotFound lo decide la capa de aplicación.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCommercialNumber(ctx context.Context, number string) (*entity.Company, error)
	Update(ctx context.Context, id string, in UpdateCompany) (*entity.Company, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Count(ctx context.Context) (int64, error)

	FindByIndustryType(ctx context.Context, industryType string) ([]*entity.Company, error)
	FindByLocation(ctx context.Context, location string) ([]*entity.Company, error)
	Search(ctx context.Context, params SearchCompaniesParams) ([]*entity.Company, error)

	GetByIDWithRelations(ctx context.Context, id string) (*CompanyWithRelations, error)
	GetStats(ctx context.Context, companyID string) (*CompanyStats, error)
	WithExpiringLicenses(ctx context.Context, daysThreshold int) ([]CompanyExpiringLicenses, error)
	ByEmployeeRange(ctx context.Context, minEmployees, maxEmployees int) ([]CompanyEmployeeCount, error)
	RefreshStats(ctx context.Context, companyID string) error
}

// UpdateCompany actualización parcial: solo los campos no-nil se persisten.
type UpdateCompany struct {
	Name             *string
	CommercialNumber *string
	IndustryType     *string
	Location         *string
	IsActive         *bool
}

// SearchCompaniesParams combina texto libre (ORed sobre nombre, número
// mercantil y ubicación) con filtros exactos (ANDed entre sí y con el texto).
type SearchCompaniesParams struct {
	Term         string
	IndustryType string
	Location     string
	IsActive     *bool
	Limit        int
	Offset       int
}

// CompanyWithRelations empresa con sus conteos relacionados (mejor esfuerzo,
// sin snapshot consistente entre los tres conteos).
type CompanyWithRelations struct {
	Company       entity.Company
	EmployeeCount int64
	LicenseCount  int64
	UserCount     int64
}

// CompanyStats agregados derivados de una empresa. AverageSalary es 0 cuando
// no hay empleados (nunca división por cero).
type CompanyStats struct {
	EmployeeCount int64
	LicenseCount  int64
	UserCount     int64
	TotalSalary   decimal.Decimal
	AverageSalary decimal.Decimal
}

// CompanyExpiringLicenses empresa más el número de licencias activas que
// vencen dentro del umbral. Empresas sin licencias por vencer no aparecen.
type CompanyExpiringLicenses struct {
	Company          entity.Company
	ExpiringLicenses int64
}

// CompanyEmployeeCount empresa más su conteo real de empleados.
type CompanyEmployeeCount struct {
	Company       entity.Company
	EmployeeCount int64
}
