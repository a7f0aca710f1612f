package repository

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
)

// RolRepository puerto de persistencia para Rol. List excluye el superadmin.
type RolRepository interface {
	Create(ctx context.Context, r *entity.Rol) error
	GetByID(ctx context.Context, id int64) (*entity.Rol, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Rol, error)
	Update(ctx context.Context, r *entity.Rol) error
	List(ctx context.Context) ([]*entity.Rol, error)
	Delete(ctx context.Context, id int64) error
}
