package dto

import (
	"time"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// CreateCredencialRequest credencial para un usuario existente.
type CreateCredencialRequest struct {
	UsuarioID  int64  `json:"usuario_id" validate:"required,gt=0"`
	Usuario    string `json:"usuario" validate:"required,min=3,max=60"`
	Contrasena string `json:"contrasena" validate:"required,min=8,bcryptmax"`
	Activo     *bool  `json:"activo"`
}

// UpdateCredencialRequest campos opcionales; una contraseña nueva se vuelve a hashear.
type UpdateCredencialRequest struct {
	Usuario    *string `json:"usuario" validate:"omitempty,min=3,max=60"`
	Contrasena *string `json:"contrasena" validate:"omitempty,min=8,bcryptmax"`
	Activo     *bool   `json:"activo"`
}

// CredencialResponse credencial sin el hash.
type CredencialResponse struct {
	ID        int64     `json:"id"`
	UsuarioID int64     `json:"usuario_id"`
	Usuario   string    `json:"usuario"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCredencialResponse(c *entity.Credencial) CredencialResponse {
	return CredencialResponse{
		ID:        c.ID,
		UsuarioID: c.UsuarioID,
		Usuario:   c.Usuario,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
