package entity

import "time"

// User representa una cuenta de acceso al sistema. La pertenencia a empresas
// se modela con CompanyUser (un usuario puede ser miembro de varias).
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"` // único
	PasswordHash string    `db:"password_hash"` // bcrypt, nunca plano en dominio después de persistir
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
