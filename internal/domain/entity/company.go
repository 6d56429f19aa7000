package entity

import "time"

// Company representa una empresa/tenant del sistema de RRHH.
// ID es inmutable después de la creación (invariante global).
type Company struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	CommercialNumber string    `db:"commercial_number"` // número de registro mercantil (único)
	IndustryType     string    `db:"industry_type"`
	Location         string    `db:"location"`
	IsActive         bool      `db:"is_active"`
	TotalEmployees   int64     `db:"total_employees"` // contador desnormalizado, ver RefreshStats
	TotalLicenses    int64     `db:"total_licenses"`  // contador desnormalizado
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// CompanyUser asocia un usuario a una empresa con un rol (membresía de acceso,
// no jerarquía organizacional).
type CompanyUser struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"` // ver constantes Role*
	CreatedAt time.Time `db:"created_at"`
}

// Roles de membresía dentro de una empresa.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)
