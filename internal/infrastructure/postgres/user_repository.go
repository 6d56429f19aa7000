package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userColumns = []string{
	"id", "email", "password_hash", "name", "created_at", "updated_at",
}

// UserRepo implementación de UserRepository (usable con pool o tx).
type UserRepo struct {
	*Repo[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{Repo: NewRepo[entity.User](q, "users", "id", userColumns)}
}

// Create persiste un nuevo usuario. Email duplicado devuelve domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	created, err := r.Repo.Create(ctx, []Assign{
		Set("id", u.ID),
		Set("email", u.Email),
		Set("password_hash", u.PasswordHash),
		Set("name", u.Name),
	})
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return created, err
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindByField(ctx, "email", email)
}
