package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/talento-hr/internal/application/dto"
	"github.com/jhoicas/talento-hr/internal/application/usecase"
)

// LicenseHandler maneja las peticiones HTTP para licencias de una empresa.
type LicenseHandler struct {
	uc *usecase.LicenseUseCase
}

// NewLicenseHandler construye el handler inyectando el caso de uso.
func NewLicenseHandler(uc *usecase.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        body       body  dto.CreateLicenseRequest  true  "Datos de la licencia"
// @Success      201  {object}  dto.LicenseResponse
// @Router       /api/companies/{companyId}/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), c.Params("companyId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener licencia por ID
// @Tags         licenses
// @Produce      json
// @Param        id  path  string  true  "ID de la licencia"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [get]
func (h *LicenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar licencia (parcial)
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la licencia"
// @Param        body  body  dto.UpdateLicenseRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.LicenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [put]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLicenseRequest
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
// @Summary      Eliminar licencia
// @Tags         licenses
// @Param        id  path  string  true  "ID de la licencia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCompany godoc
// @Summary      Listar licencias de una empresa
// @Tags         licenses
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        expiring   query  int     false  "Solo las que vencen en N días"
// @Success      200  {object}  dto.LicenseListResponse
// @Router       /api/companies/{companyId}/licenses [get]
func (h *LicenseHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.Params("companyId")
	if days := c.QueryInt("expiring", 0); days > 0 {
		items, err := h.uc.Expiring(c.Context(), companyID, days)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.LicenseListResponse{Items: items})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.ListByCompany(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
