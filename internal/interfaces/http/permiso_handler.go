package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
)

// PermisoHandler catálogo de permisos.
type PermisoHandler struct {
	uc *usecase.PermisoUseCase
}

func NewPermisoHandler(uc *usecase.PermisoUseCase) *PermisoHandler {
	return &PermisoHandler{uc: uc}
}

// List godoc
// @Summary      Listar permisos
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PermisoResponse
// @Router       /api/permisos [get]
func (h *PermisoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permisos", out)
}

// GetByID godoc
// @Summary      Obtener permiso
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del permiso"
// @Success      200  {object}  dto.PermisoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [get]
func (h *PermisoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permiso", out)
}

// Create godoc
// @Summary      Crear permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PermisoRequest  true  "nombre <entidad>.<accion>"
// @Success      201   {object}  dto.PermisoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/permisos [post]
func (h *PermisoHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), *Cuerpo[dto.PermisoRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "permiso creado", out)
}

// Update godoc
// @Summary      Actualizar permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del permiso"
// @Param        body  body  dto.PermisoRequest  true  "nombre, descripcion"
// @Success      200   {object}  dto.PermisoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [put]
func (h *PermisoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, *Cuerpo[dto.PermisoRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permiso actualizado", out)
}

// Delete godoc
// @Summary      Eliminar permiso
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del permiso"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [delete]
func (h *PermisoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permiso eliminado", nil)
}
