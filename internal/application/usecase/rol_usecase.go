package usecase

import (
	"context"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// RolUseCase CRUD de roles. El superadmin (id 1) no se lista, edita ni borra.
type RolUseCase struct {
	repo         repository.RolRepository
	usuarioRoles repository.UsuarioRolRepository
	rolPermisos  repository.RolPermisoRepository
	cache        PermisosInvalidator
}

// NewRolUseCase cache puede ser nil.
func NewRolUseCase(repo repository.RolRepository, usuarioRoles repository.UsuarioRolRepository, rolPermisos repository.RolPermisoRepository, cache PermisosInvalidator) *RolUseCase {
	return &RolUseCase{repo: repo, usuarioRoles: usuarioRoles, rolPermisos: rolPermisos, cache: cache}
}

func (uc *RolUseCase) List(ctx context.Context) ([]dto.RolResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(list))
	for _, r := range list {
		if r.EsReservado() {
			continue
		}
		out = append(out, dto.NewRolResponse(r))
	}
	return out, nil
}

func (uc *RolUseCase) GetByID(ctx context.Context, id int64) (*dto.RolResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewRolResponse(r)
	return &resp, nil
}

func (uc *RolUseCase) Create(ctx context.Context, in dto.RolRequest) (*dto.RolResponse, error) {
	existente, err := uc.repo.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	r := &entity.Rol{Nombre: in.Nombre, Descripcion: in.Descripcion}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := dto.NewRolResponse(r)
	return &resp, nil
}

func (uc *RolUseCase) Update(ctx context.Context, id int64, in dto.RolRequest) (*dto.RolResponse, error) {
	if id == entity.RolSuperadminID {
		return nil, domain.ErrReservedRole
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != r.Nombre {
		otro, err := uc.repo.GetByNombre(ctx, in.Nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil {
			return nil, domain.ErrDuplicate
		}
	}
	r.Nombre = in.Nombre
	r.Descripcion = in.Descripcion
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	// el nombre viaja en las resoluciones cacheadas
	if uc.cache != nil {
		uc.cache.InvalidateAll()
	}
	resp := dto.NewRolResponse(r)
	return &resp, nil
}

// Delete falla con ErrHasDependents si el rol aún tiene usuarios o permisos.
func (uc *RolUseCase) Delete(ctx context.Context, id int64) error {
	if id == entity.RolSuperadminID {
		return domain.ErrReservedRole
	}
	usuarios, err := uc.usuarioRoles.CountByRol(ctx, id)
	if err != nil {
		return err
	}
	if usuarios > 0 {
		return domain.ErrHasDependents
	}
	permisos, err := uc.rolPermisos.ListByRol(ctx, id)
	if err != nil {
		return err
	}
	if len(permisos) > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}
