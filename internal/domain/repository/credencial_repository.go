package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// CredencialRepository persistencia de credenciales de login.
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type CredencialRepository interface {
	Create(ctx context.Context, c *entity.Credencial) error
	GetByID(ctx context.Context, id int64) (*entity.Credencial, error)
	GetByUsuario(ctx context.Context, usuario string) (*entity.Credencial, error)
	GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Credencial, error)
	Update(ctx context.Context, c *entity.Credencial) error
	Delete(ctx context.Context, id int64) error
}
