package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByDocumento(ctx context.Context, numero string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
	Delete(ctx context.Context, id int64) error
}
