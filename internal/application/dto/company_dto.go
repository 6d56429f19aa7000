package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	CommercialNumber string `json:"commercial_number" validate:"required,min=1,max=30"`
	IndustryType     string `json:"industry_type"`
	Location         string `json:"location"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=200"`
	CommercialNumber *string `json:"commercial_number" validate:"omitempty,min=1,max=30"`
	IndustryType     *string `json:"industry_type"`
	Location         *string `json:"location"`
	IsActive         *bool   `json:"is_active"`
}

// SearchCompaniesRequest parámetros de búsqueda combinada.
type SearchCompaniesRequest struct {
	SearchTerm   string `query:"q"`
	IndustryType string `query:"industry_type"`
	Location     string `query:"location"`
	IsActive     *bool  `query:"is_active"`
	PageRequest
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CommercialNumber string    `json:"commercial_number"`
	IndustryType     string    `json:"industry_type"`
	Location         string    `json:"location"`
	IsActive         bool      `json:"is_active"`
	TotalEmployees   int64     `json:"total_employees"`
	TotalLicenses    int64     `json:"total_licenses"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CompanyStatsResponse agregados derivados de una empresa. Los montos van como
// string para no perder precisión decimal en JSON.
type CompanyStatsResponse struct {
	EmployeeCount int64  `json:"employee_count"`
	LicenseCount  int64  `json:"license_count"`
	UserCount     int64  `json:"user_count"`
	TotalSalary   string `json:"total_salary"`
	AverageSalary string `json:"average_salary"`
}

// CompanyWithRelationsResponse empresa más sus conteos relacionados.
type CompanyWithRelationsResponse struct {
	CompanyResponse
	EmployeeCount int64 `json:"employee_count"`
	LicenseCount  int64 `json:"license_count"`
	UserCount     int64 `json:"user_count"`
}

// CompanyExpiringLicensesResponse empresa más sus licencias por vencer.
type CompanyExpiringLicensesResponse struct {
	CompanyResponse
	ExpiringLicenses int64 `json:"expiring_licenses"`
}

// CompanyEmployeeCountResponse empresa más su conteo real de empleados.
type CompanyEmployeeCountResponse struct {
	CompanyResponse
	EmployeeCount int64 `json:"employee_count"`
}
