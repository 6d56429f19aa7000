package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

// EmployeeUseCase casos de uso de empleados. Tras cada alta o baja dispara el
// resync de contadores desnormalizados de la empresa (mejor esfuerzo: si el
// resync falla se registra y la operación principal no se revierte).
type EmployeeUseCase struct {
	repo        repository.EmployeeRepository
	companyRepo repository.CompanyRepository
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(repo repository.EmployeeRepository, companyRepo repository.CompanyRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, companyRepo: companyRepo}
}

// Create da de alta un empleado en la empresa. Valida campos requeridos y que
// el salario sea un decimal no negativo; la empresa debe existir.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := domain.ValidateRequired(map[string]string{
		"name":   in.Name,
		"salary": in.Salary,
	}); err != nil {
		return nil, err
	}
	salary, err := decimal.NewFromString(in.Salary)
	if err != nil || salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	employee, err := uc.repo.Create(ctx, &entity.Employee{
		CompanyID:  companyID,
		Name:       in.Name,
		Department: in.Department,
		Position:   in.Position,
		Salary:     salary,
		Status:     entity.EmployeeActive,
	})
	if err != nil {
		return nil, err
	}
	uc.refreshCompanyStats(ctx, companyID)
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado. domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update actualización parcial. Un salario presente debe ser decimal no
// negativo. domain.ErrNotFound si el id no existe.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	patch := repository.UpdateEmployee{
		Name:       in.Name,
		Department: in.Department,
		Position:   in.Position,
		Status:     in.Status,
	}
	if in.Salary != nil {
		salary, err := decimal.NewFromString(*in.Salary)
		if err != nil || salary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		patch.Salary = &salary
	}
	employee, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Delete da de baja al empleado y dispara el resync de contadores.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.refreshCompanyStats(ctx, employee.CompanyID)
	return nil
}

// ListByCompany empleados de una empresa con paginación.
func (uc *EmployeeUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.MakePage(limit, offset),
	}, nil
}

// SearchByName busca empleados por subcadena del nombre dentro de la empresa.
func (uc *EmployeeUseCase) SearchByName(ctx context.Context, companyID, term string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.SearchByName(ctx, companyID, term)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// refreshCompanyStats sincroniza los contadores desnormalizados tras una
// mutación de membresía. Mejor esfuerzo: el fallo se registra, no se propaga.
func (uc *EmployeeUseCase) refreshCompanyStats(ctx context.Context, companyID string) {
	if err := uc.companyRepo.RefreshStats(ctx, companyID); err != nil {
		log.Warn().Err(err).Str("company_id", companyID).Msg("resync de contadores falló")
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:         e.ID,
		CompanyID:  e.CompanyID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Salary:     e.Salary.String(),
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
