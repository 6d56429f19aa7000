package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de un empleado (CHECK en la tabla employees).
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
	EmployeeArchived = "archived"
)

// Employee representa un empleado. Pertenece a exactamente una empresa
// (company_id es FK obligatoria; el borrado de la empresa cascadea).
type Employee struct {
	ID         string          `db:"id"`
	CompanyID  string          `db:"company_id"`
	Name       string          `db:"name"`
	Department string          `db:"department"`
	Position   string          `db:"position"`
	Salary     decimal.Decimal `db:"salary"` // NUMERIC, nunca negativo
	Status     string          `db:"status"` // ver constantes Employee*
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
