package entity

import "time"

// License representa una licencia/permiso de operación de una empresa.
type License struct {
	ID        string     `db:"id"`
	CompanyID string     `db:"company_id"`
	Name      string     `db:"name"`
	Status    string     `db:"status"` // valid, renewal_pending, revoked
	IsActive  bool       `db:"is_active"`
	ExpiresAt *time.Time `db:"expires_at"` // nil = sin vencimiento
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
