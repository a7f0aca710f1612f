package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
)

// CredencialHandler administración de credenciales. Ninguna respuesta incluye el hash.
type CredencialHandler struct {
	uc *usecase.CredencialUseCase
}

func NewCredencialHandler(uc *usecase.CredencialUseCase) *CredencialHandler {
	return &CredencialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear credencial para un usuario
// @Tags         credenciales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCredencialRequest  true  "usuario_id, usuario, contrasena"
// @Success      201   {object}  dto.CredencialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/credenciales [post]
func (h *CredencialHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), *Cuerpo[dto.CreateCredencialRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "credencial creada", out)
}

// GetByID godoc
// @Summary      Obtener credencial
// @Tags         credenciales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la credencial"
// @Success      200  {object}  dto.CredencialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credenciales/{id} [get]
func (h *CredencialHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "credencial", out)
}

// Update godoc
// @Summary      Actualizar credencial
// @Tags         credenciales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la credencial"
// @Param        body  body  dto.UpdateCredencialRequest  true  "usuario, contrasena, activo (opcionales)"
// @Success      200   {object}  dto.CredencialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/credenciales/{id} [put]
func (h *CredencialHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, *Cuerpo[dto.UpdateCredencialRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "credencial actualizada", out)
}

// Delete godoc
// @Summary      Eliminar credencial
// @Tags         credenciales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la credencial"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credenciales/{id} [delete]
func (h *CredencialHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "credencial eliminada", nil)
}
