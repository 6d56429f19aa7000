package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Employee, error)
	Update(ctx context.Context, id string, in UpdateEmployee) (*entity.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	SearchByName(ctx context.Context, companyID, term string) ([]*entity.Employee, error)
	CountByStatus(ctx context.Context, companyID, status string) (int64, error)
}

// UpdateEmployee actualización parcial de un empleado.
type UpdateEmployee struct {
	Name       *string
	Department *string
	Position   *string
	Salary     *decimal.Decimal
	Status     *string
}
