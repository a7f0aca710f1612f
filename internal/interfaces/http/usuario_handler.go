package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
)

// UsuarioHandler administración de usuarios y de sus roles.
type UsuarioHandler struct {
	uc           *usecase.UsuarioUseCase
	asignaciones *usecase.AsignacionUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, asignaciones *usecase.AsignacionUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, asignaciones: asignaciones}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.UsuarioListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "usuarios", out)
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "usuario", out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "Datos de identidad"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, *Cuerpo[dto.UpdateUsuarioRequest](c))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "usuario actualizado", out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "usuario eliminado", nil)
}

// ListRoles godoc
// @Summary      Roles asignados a un usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {array}  dto.UsuarioRolResponse
// @Router       /api/usuarios/{id}/roles [get]
func (h *UsuarioHandler) ListRoles(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.asignaciones.RolesDeUsuario(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "roles del usuario", out)
}

// AsignarRol godoc
// @Summary      Asignar rol a usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.AsignarRolRequest  true  "rol_id"
// @Success      201   {object}  dto.UsuarioRolResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/roles [post]
func (h *UsuarioHandler) AsignarRol(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	in := Cuerpo[dto.AsignarRolRequest](c)
	out, err := h.asignaciones.AsignarRol(c.UserContext(), id, in.RolID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, "rol asignado", out)
}

// QuitarRol godoc
// @Summary      Quitar rol a usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id            path  int  true  "ID del usuario"
// @Param        asignacionId  path  int  true  "ID de la asignación"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/roles/{asignacionId} [delete]
func (h *UsuarioHandler) QuitarRol(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	asignacionID, err := paramID(c, "asignacionId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.asignaciones.QuitarRol(c.UserContext(), id, asignacionID); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, fiber.StatusOK, "rol retirado", nil)
}
