package dto

import "github.com/jhoicas/veterinaria-api/internal/domain/entity"

// RolRequest alta o edición de un rol.
type RolRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=60"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=200"`
}

type RolResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// PermisoRequest alta o edición de un permiso ("<entidad>.<accion>").
type PermisoRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=80"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=200"`
}

type PermisoResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// AsignarRolRequest asigna un rol a un usuario.
type AsignarRolRequest struct {
	RolID int64 `json:"rol_id" validate:"required,gt=0"`
}

// AsignarPermisoRequest asigna un permiso a un rol.
type AsignarPermisoRequest struct {
	PermisoID int64 `json:"permiso_id" validate:"required,gt=0"`
}

type UsuarioRolResponse struct {
	ID        int64 `json:"id"`
	UsuarioID int64 `json:"usuario_id"`
	RolID     int64 `json:"rol_id"`
}

type RolPermisoResponse struct {
	ID        int64 `json:"id"`
	RolID     int64 `json:"rol_id"`
	PermisoID int64 `json:"permiso_id"`
}

func NewRolResponse(r *entity.Rol) RolResponse {
	return RolResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}
}

func NewPermisoResponse(p *entity.Permiso) PermisoResponse {
	return PermisoResponse{ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion}
}
