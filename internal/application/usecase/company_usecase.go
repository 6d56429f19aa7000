package usecase

import (
	"context"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
	"github.com/jhoicas/talento-hr/pkg/textutil"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa activa. Devuelve domain.ErrDuplicate si el
// número mercantil ya existe, ValidationError si faltan campos requeridos.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := domain.ValidateRequired(map[string]string{
		"name":              in.Name,
		"commercial_number": in.CommercialNumber,
	}); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCommercialNumber(ctx, in.CommercialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company, err := uc.repo.Create(ctx, &entity.Company{
		Name:             in.Name,
		CommercialNumber: in.CommercialNumber,
		IndustryType:     in.IndustryType,
		Location:         in.Location,
		IsActive:         true,
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update actualización parcial. domain.ErrNotFound si el id no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.Update(ctx, id, repository.UpdateCompany{
		Name:             in.Name,
		CommercialNumber: in.CommercialNumber,
		IndustryType:     in.IndustryType,
		Location:         in.Location,
		IsActive:         in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa (cascadea empleados y licencias). Idempotente a
// nivel de repositorio; aquí un id inexistente se reporta como ErrNotFound.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empresas con paginación y total.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.MakePageWithTotal(limit, offset, total),
	}, nil
}

// Search búsqueda combinada: texto libre más filtros exactos opcionales, orden
// por nombre ascendente. El término se pliega con Fold y el repositorio aplica
// unaccent() sobre las columnas: la coincidencia ignora acentos en ambos lados.
func (uc *CompanyUseCase) Search(ctx context.Context, in dto.SearchCompaniesRequest) (*dto.CompanyListResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.Search(ctx, repository.SearchCompaniesParams{
		Term:         textutil.Fold(in.SearchTerm),
		IndustryType: in.IndustryType,
		Location:     in.Location,
		IsActive:     in.IsActive,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.MakePage(in.Limit, in.Offset),
	}, nil
}

// GetWithRelations empresa más sus conteos de empleados, licencias y usuarios.
func (uc *CompanyUseCase) GetWithRelations(ctx context.Context, id string) (*dto.CompanyWithRelationsResponse, error) {
	out, err := uc.repo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CompanyWithRelationsResponse{
		CompanyResponse: *toCompanyResponse(&out.Company),
		EmployeeCount:   out.EmployeeCount,
		LicenseCount:    out.LicenseCount,
		UserCount:       out.UserCount,
	}, nil
}

// GetStats agregados de la empresa. Verifica primero que exista: los
// agregados puros devolverían ceros para un id desconocido.
func (uc *CompanyUseCase) GetStats(ctx context.Context, id string) (*dto.CompanyStatsResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.repo.GetStats(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyStatsResponse{
		EmployeeCount: stats.EmployeeCount,
		LicenseCount:  stats.LicenseCount,
		UserCount:     stats.UserCount,
		TotalSalary:   stats.TotalSalary.String(),
		AverageSalary: stats.AverageSalary.String(),
	}, nil
}

// ExpiringLicenses empresas con licencias activas que vencen dentro del
// umbral (por defecto 30 días).
func (uc *CompanyUseCase) ExpiringLicenses(ctx context.Context, daysThreshold int) ([]dto.CompanyExpiringLicensesResponse, error) {
	if daysThreshold <= 0 {
		daysThreshold = 30
	}
	rows, err := uc.repo.WithExpiringLicenses(ctx, daysThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyExpiringLicensesResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CompanyExpiringLicensesResponse{
			CompanyResponse:  *toCompanyResponse(&row.Company),
			ExpiringLicenses: row.ExpiringLicenses,
		})
	}
	return out, nil
}

// ByEmployeeRange empresas con conteo de empleados en [min, max] inclusive.
func (uc *CompanyUseCase) ByEmployeeRange(ctx context.Context, minEmployees, maxEmployees int) ([]dto.CompanyEmployeeCountResponse, error) {
	if minEmployees < 0 || maxEmployees < minEmployees {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.ByEmployeeRange(ctx, minEmployees, maxEmployees)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyEmployeeCountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CompanyEmployeeCountResponse{
			CompanyResponse: *toCompanyResponse(&row.Company),
			EmployeeCount:   row.EmployeeCount,
		})
	}
	return out, nil
}

// RefreshStats recalcula y persiste los contadores desnormalizados.
func (uc *CompanyUseCase) RefreshStats(ctx context.Context, id string) error {
	return uc.repo.RefreshStats(ctx, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		CommercialNumber: c.CommercialNumber,
		IndustryType:     c.IndustryType,
		Location:         c.Location,
		IsActive:         c.IsActive,
		TotalEmployees:   c.TotalEmployees,
		TotalLicenses:    c.TotalLicenses,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
