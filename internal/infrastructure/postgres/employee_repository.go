package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

var employeeColumns = []string{
	"id", "company_id", "name", "department", "position",
	"salary", "status", "created_at", "updated_at",
}

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	*Repo[entity.Employee]
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{Repo: NewRepo[entity.Employee](q, "employees", "id", employeeColumns)}
}

// Create persiste un nuevo empleado. La FK a companies es obligatoria: una
// empresa inexistente produce violación de integridad (StorageError).
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = entity.EmployeeActive
	}
	created, err := r.Repo.Create(ctx, []Assign{
		Set("id", e.ID),
		Set("company_id", e.CompanyID),
		Set("name", e.Name),
		Set("department", e.Department),
		Set("position", e.Position),
		Set("salary", e.Salary),
		Set("status", e.Status),
	})
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return created, err
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.FindByID(ctx, id)
}

// GetByIDs búsqueda por lote; los ids sin fila no aparecen en el resultado.
func (r *EmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Employee, error) {
	return r.FindByIDs(ctx, ids)
}

// Update actualización parcial; sella updated_at. (nil, nil) si no existe.
func (r *EmployeeRepo) Update(ctx context.Context, id string, in repository.UpdateEmployee) (*entity.Employee, error) {
	var fields []Assign
	if in.Name != nil {
		fields = append(fields, Set("name", *in.Name))
	}
	if in.Department != nil {
		fields = append(fields, Set("department", *in.Department))
	}
	if in.Position != nil {
		fields = append(fields, Set("position", *in.Position))
	}
	if in.Salary != nil {
		fields = append(fields, Set("salary", *in.Salary))
	}
	if in.Status != nil {
		fields = append(fields, Set("status", *in.Status))
	}
	return r.Repo.Update(ctx, id, fields)
}

// ListByCompany empleados de una empresa, orden alfabético por nombre.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	return r.FindAll(ctx, QueryOptions{
		Where:   []Cond{Eq("company_id", companyID)},
		OrderBy: "name",
		Limit:   limit,
		Offset:  offset,
	})
}

// SearchByName busca empleados de la empresa por subcadena del nombre.
func (r *EmployeeRepo) SearchByName(ctx context.Context, companyID, term string) ([]*entity.Employee, error) {
	return r.Search(ctx, term, []string{"name"}, QueryOptions{
		Where:   []Cond{Eq("company_id", companyID)},
		OrderBy: "name",
	})
}

// CountByStatus cuenta empleados de la empresa en un estado dado.
func (r *EmployeeRepo) CountByStatus(ctx context.Context, companyID, status string) (int64, error) {
	return r.Count(ctx, []Cond{Eq("company_id", companyID), Eq("status", status)})
}
