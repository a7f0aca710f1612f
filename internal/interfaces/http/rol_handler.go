package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
)

// RolHandler CRUD de roles y de sus permisos.
type RolHandler struct {
	uc           *usecase.RolUseCase
	asignaciones *usecase.AsignacionUseCase
}

func NewRolHandler(uc *usecase.RolUseCase, asignaciones *usecase.AsignacionUseCase) *RolHandler {
	return &RolHandler{uc: uc, asignaciones: asignaciones}
}

// List godoc
// @Summary      Listar roles (sin superadmin)
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RolResponse
// @Router       /api/roles [get]
func (h *RolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "roles", out)
}

// GetByID godoc
// @Summary      Obtener rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.RolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RolHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "rol", out)
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RolRequest  true  "nombre, descripcion"
// @Success      201   {object}  dto.RolResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RolHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), *Cuerpo[dto.RolRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "rol creado", out)
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del rol"
// @Param        body  body  dto.RolRequest  true  "nombre, descripcion"
// @Success      200   {object}  dto.RolResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RolHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, *Cuerpo[dto.RolRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "rol actualizado", out)
}

// Delete godoc
// @Summary      Eliminar rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RolHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "rol eliminado", nil)
}

// ListPermisos godoc
// @Summary      Permisos de un rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del rol"
// @Success      200  {array}  dto.RolPermisoResponse
// @Router       /api/roles/{id}/permisos [get]
func (h *RolHandler) ListPermisos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.asignaciones.PermisosDeRol(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permisos del rol", out)
}

// AsignarPermiso godoc
// @Summary      Asignar permiso a rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del rol"
// @Param        body  body  dto.AsignarPermisoRequest  true  "permiso_id"
// @Success      201   {object}  dto.RolPermisoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/permisos [post]
func (h *RolHandler) AsignarPermiso(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	in := Cuerpo[dto.AsignarPermisoRequest](c)
	out, err := h.asignaciones.AsignarPermiso(c.UserContext(), id, in.PermisoID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "permiso asignado", out)
}

// QuitarPermiso godoc
// @Summary      Quitar permiso a rol
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id            path  int  true  "ID del rol"
// @Param        asignacionId  path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/permisos/{asignacionId} [delete]
func (h *RolHandler) QuitarPermiso(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	asignacionID, err := paramID(c, "asignacionId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.asignaciones.QuitarPermiso(c.UserContext(), id, asignacionID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "permiso retirado", nil)
}
