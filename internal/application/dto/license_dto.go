package dto

import "time"

// CreateLicenseRequest entrada para registrar una licencia. ExpiresAt en
// formato fecha RFC 3339; nil = sin vencimiento.
type CreateLicenseRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Status    string     `json:"status"`
	IsActive  *bool      `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// UpdateLicenseRequest actualización parcial de una licencia. Como un JSON
// null en expires_at es indistinguible de un campo ausente, borrar el
// vencimiento se pide explícito con clear_expires_at.
type UpdateLicenseRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Status         *string    `json:"status"`
	IsActive       *bool      `json:"is_active"`
	ExpiresAt      *time.Time `json:"expires_at"`
	ClearExpiresAt bool       `json:"clear_expires_at"`
}

// LicenseResponse salida de una licencia.
type LicenseResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LicenseListResponse lista de licencias de una empresa.
type LicenseListResponse struct {
	Items []LicenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
