package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa (parcial)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empresas (texto libre + filtros exactos)
// @Tags         companies
// @Produce      json
// @Param        q              query  string  false  "Término de búsqueda"
// @Param        industry_type  query  string  false  "Sector"
// @Param        location       query  string  false  "Ubicación"
// @Param        is_active      query  bool    false  "Solo activas/inactivas"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies/search [get]
func (h *CompanyHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchCompaniesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Search(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de una empresa
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/stats [get]
func (h *CompanyHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WithRelations godoc
// @Summary      Empresa con conteos relacionados
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyWithRelationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/relations [get]
func (h *CompanyHandler) WithRelations(c *fiber.Ctx) error {
	out, err := h.uc.GetWithRelations(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RefreshStats godoc
// @Summary      Resincronizar contadores desnormalizados
// @Tags         companies
// @Param        id  path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/refresh-stats [post]
func (h *CompanyHandler) RefreshStats(c *fiber.Ctx) error {
	if err := h.uc.RefreshStats(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExpiringLicenses godoc
// @Summary      Empresas con licencias por vencer
// @Tags         companies
// @Produce      json
// @Param        days  query  int  false  "Umbral en días"  default(30)
// @Success      200   {array}  dto.CompanyExpiringLicensesResponse
// @Router       /api/companies/expiring-licenses [get]
func (h *CompanyHandler) ExpiringLicenses(c *fiber.Ctx) error {
	out, err := h.uc.ExpiringLicenses(c.Context(), c.QueryInt("days", 30))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByEmployeeRange godoc
// @Summary      Empresas por rango de empleados (inclusive)
// @Tags         companies
// @Produce      json
// @Param        min  query  int  true  "Mínimo de empleados"
// @Param        max  query  int  true  "Máximo de empleados"
// @Success      200  {array}  dto.CompanyEmployeeCountResponse
// @Router       /api/companies/by-employee-range [get]
func (h *CompanyHandler) ByEmployeeRange(c *fiber.Ctx) error {
	out, err := h.uc.ByEmployeeRange(c.Context(), c.QueryInt("min", 0), c.QueryInt("max", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
