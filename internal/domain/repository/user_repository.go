package repository

import (
	"context"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CompanyUserRepository puerto para la membresía usuario-empresa.
type CompanyUserRepository interface {
	Add(ctx context.Context, membership *entity.CompanyUser) (*entity.CompanyUser, error)
	Get(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error)
	Remove(ctx context.Context, companyID, userID string) (bool, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error)
	Exists(ctx context.Context, companyID, userID string) (bool, error)
}
