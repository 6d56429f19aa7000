package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

var _ repository.CompanyUserRepository = (*CompanyUserRepo)(nil)

var companyUserColumns = []string{
	"id", "company_id", "user_id", "role", "created_at",
}

// CompanyUserRepo implementación de CompanyUserRepository: membresías
// usuario-empresa con rol.
type CompanyUserRepo struct {
	*Repo[entity.CompanyUser]
}

// NewCompanyUserRepository construye el adaptador de membresías.
func NewCompanyUserRepository(q Querier) *CompanyUserRepo {
	return &CompanyUserRepo{Repo: NewRepo[entity.CompanyUser](q, "company_users", "id", companyUserColumns)}
}

// Add crea la membresía. El par (company_id, user_id) es único:
// re-agregar devuelve domain.ErrDuplicate.
func (r *CompanyUserRepo) Add(ctx context.Context, m *entity.CompanyUser) (*entity.CompanyUser, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Role == "" {
		m.Role = entity.RoleViewer
	}
	created, err := r.Repo.Create(ctx, []Assign{
		Set("id", m.ID),
		Set("company_id", m.CompanyID),
		Set("user_id", m.UserID),
		Set("role", m.Role),
	})
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return created, err
}

// Get obtiene la membresía de un usuario en una empresa. (nil, nil) si no
// es miembro.
func (r *CompanyUserRepo) Get(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error) {
	list, err := r.FindAll(ctx, QueryOptions{
		Where: []Cond{Eq("company_id", companyID), Eq("user_id", userID)},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Remove elimina la membresía; true solo si existía.
func (r *CompanyUserRepo) Remove(ctx context.Context, companyID, userID string) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM company_users WHERE company_id = $1 AND user_id = $2`,
		companyID, userID,
	)
	if err != nil {
		return false, storageErr("delete company_users", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByCompany membresías de una empresa.
func (r *CompanyUserRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error) {
	return r.FindAll(ctx, QueryOptions{
		Where:   []Cond{Eq("company_id", companyID)},
		OrderBy: "created_at",
	})
}

// Exists informa si el usuario es miembro de la empresa.
func (r *CompanyUserRepo) Exists(ctx context.Context, companyID, userID string) (bool, error) {
	return r.Repo.Exists(ctx, []Cond{Eq("company_id", companyID), Eq("user_id", userID)})
}
