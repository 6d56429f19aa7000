package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/talento-hr/internal/application/auth"
	"github.com/jhoicas/talento-hr/internal/application/usecase"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	EmployeeUC *usecase.EmployeeUseCase
	LicenseUC  *usecase.LicenseUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", RequireRole(entity.RoleOwner, entity.RoleAdmin), companyHandler.Create)
	// Las rutas fijas van antes que /:id para que Fiber no las capture como id.
	companies.Get("/search", companyHandler.Search)
	companies.Get("/expiring-licenses", companyHandler.ExpiringLicenses)
	companies.Get("/by-employee-range", companyHandler.ByEmployeeRange)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin), companyHandler.Update)
	companies.Delete("/:id", RequireRole(entity.RoleOwner), companyHandler.Delete)
	companies.Get("/:id/stats", companyHandler.Stats)
	companies.Get("/:id/relations", companyHandler.WithRelations)
	companies.Post("/:id/refresh-stats", RequireRole(entity.RoleOwner, entity.RoleAdmin), companyHandler.RefreshStats)

	// Employees (anidados bajo la empresa para alta y listado)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	companies.Post("/:companyId/employees", RequireRole(entity.RoleOwner, entity.RoleAdmin, entity.RoleManager), employeeHandler.Create)
	companies.Get("/:companyId/employees", employeeHandler.ListByCompany)
	employees := protected.Group("/employees")
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin, entity.RoleManager), employeeHandler.Update)
	employees.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin), employeeHandler.Delete)

	// Licenses
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	companies.Post("/:companyId/licenses", RequireRole(entity.RoleOwner, entity.RoleAdmin), licenseHandler.Create)
	companies.Get("/:companyId/licenses", licenseHandler.ListByCompany)
	licenses := protected.Group("/licenses")
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin), licenseHandler.Update)
	licenses.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleAdmin), licenseHandler.Delete)
}
