package dto

import "time"

// CreateEmployeeRequest entrada para dar de alta un empleado. Salary se parsea
// como decimal (acepta número o string en JSON).
type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Salary     string `json:"salary" validate:"required"`
}

// UpdateEmployeeRequest actualización parcial de un empleado.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Salary     *string `json:"salary"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive archived"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     string    `json:"salary"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
