package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/talento-hr/internal/application/auth"
	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
	pkgjwt "github.com/jhoicas/talento-hr/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de usuario y membresía
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	createFn     func(ctx context.Context, u *entity.User) (*entity.User, error)
	getByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	u.ID = "u-generated"
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

type fakeMembershipRepo struct {
	getFn func(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error)
}

var _ repository.CompanyUserRepository = (*fakeMembershipRepo)(nil)

func (f *fakeMembershipRepo) Add(ctx context.Context, m *entity.CompanyUser) (*entity.CompanyUser, error) {
	return m, nil
}

func (f *fakeMembershipRepo) Get(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error) {
	if f.getFn != nil {
		return f.getFn(ctx, companyID, userID)
	}
	return nil, nil
}

func (f *fakeMembershipRepo) Remove(ctx context.Context, companyID, userID string) (bool, error) {
	return false, nil
}

func (f *fakeMembershipRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error) {
	return nil, nil
}

func (f *fakeMembershipRepo) Exists(ctx context.Context, companyID, userID string) (bool, error) {
	return false, nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "talento-hr-test"}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CamposRequeridos(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{}, &fakeMembershipRepo{}, testJWT)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	userRepo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Email: email}, nil
		},
	}
	uc := auth.NewAuthUseCase(userRepo, &fakeMembershipRepo{}, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@acme.co",
		Password: "supersecreta",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_OK_HasheaPassword(t *testing.T) {
	var created *entity.User
	userRepo := &fakeUserRepo{
		createFn: func(_ context.Context, u *entity.User) (*entity.User, error) {
			u.ID = "u-9"
			created = u
			return u, nil
		},
	}
	uc := auth.NewAuthUseCase(userRepo, &fakeMembershipRepo{}, testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@acme.co",
		Password: "supersecreta",
		Name:     "Ana",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "supersecreta", created.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecreta")))
	assert.Equal(t, "u-9", out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{}, &fakeMembershipRepo{}, testJWT)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@acme.co", Password: "x", CompanyID: "c-1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	hash := hashFor(t, "la-correcta")
	userRepo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}
	uc := auth.NewAuthUseCase(userRepo, &fakeMembershipRepo{}, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.co", Password: "otra", CompanyID: "c-1",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinMembresia(t *testing.T) {
	hash := hashFor(t, "supersecreta")
	userRepo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}
	uc := auth.NewAuthUseCase(userRepo, &fakeMembershipRepo{}, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.co", Password: "supersecreta", CompanyID: "c-ajena",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"usuario válido sin membresía en la empresa debe recibir forbidden")
}

func TestLogin_OK_TokenConRolDeMembresia(t *testing.T) {
	hash := hashFor(t, "supersecreta")
	userRepo := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}
	membershipRepo := &fakeMembershipRepo{
		getFn: func(_ context.Context, companyID, userID string) (*entity.CompanyUser, error) {
			return &entity.CompanyUser{CompanyID: companyID, UserID: userID, Role: entity.RoleManager}, nil
		},
	}
	uc := auth.NewAuthUseCase(userRepo, membershipRepo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@acme.co", Password: "supersecreta", CompanyID: "c-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)

	userID, companyID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "c-1", companyID)
	assert.Equal(t, entity.RoleManager, role)
}
