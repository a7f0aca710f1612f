package dto

import (
	"time"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// UpdateUsuarioRequest datos de identidad editables.
type UpdateUsuarioRequest struct {
	TipoDocumento   string  `json:"tipo_documento" validate:"required,max=20"`
	NumeroDocumento string  `json:"numero_documento" validate:"required,max=30"`
	Nombre          string  `json:"nombre" validate:"required,max=150"`
	Telefono        string  `json:"telefono" validate:"omitempty,max=30"`
	Direccion       string  `json:"direccion" validate:"omitempty,max=200"`
	Email           *string `json:"email" validate:"omitempty,email,max=150"`
}

// UsuarioResponse salida de un usuario.
type UsuarioResponse struct {
	ID              int64     `json:"id"`
	TipoDocumento   string    `json:"tipo_documento"`
	NumeroDocumento string    `json:"numero_documento"`
	Nombre          string    `json:"nombre"`
	Telefono        string    `json:"telefono"`
	Direccion       string    `json:"direccion"`
	Email           *string   `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UsuarioListResponse página de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

func NewUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:              u.ID,
		TipoDocumento:   u.TipoDocumento,
		NumeroDocumento: u.NumeroDocumento,
		Nombre:          u.Nombre,
		Telefono:        u.Telefono,
		Direccion:       u.Direccion,
		Email:           u.Email,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
