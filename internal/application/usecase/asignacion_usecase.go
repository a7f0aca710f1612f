package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/application/dto"
	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

// PermisosInvalidator lo cumple *auth.PermissionResolver.
type PermisosInvalidator interface {
	Invalidate(usuarioID int64)
	InvalidateAll()
}

// AsignacionUseCase asignaciones usuario->rol y rol->permiso.
// La verificación de duplicado y la inserción corren en la misma transacción; el índice
// único cubre la carrera entre dos transacciones concurrentes.
type AsignacionUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	cache PermisosInvalidator
}

// NewAsignacionUseCase cache puede ser nil.
func NewAsignacionUseCase(tx repository.TxRunner, repos repository.Repos, cache PermisosInvalidator) *AsignacionUseCase {
	return &AsignacionUseCase{tx: tx, repos: repos, cache: cache}
}

// AsignarRol ErrNotFound si falta el usuario o el rol; ErrConflict si ya estaba asignado.
// El superadmin solo se otorga desde cmd/seed.
func (uc *AsignacionUseCase) AsignarRol(ctx context.Context, usuarioID, rolID int64) (*dto.UsuarioRolResponse, error) {
	if rolID == entity.RolSuperadminID {
		return nil, domain.ErrReservedRole
	}
	ur := &entity.UsuarioRol{UsuarioID: usuarioID, RolID: rolID}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		u, err := r.Usuarios.GetByID(ctx, usuarioID)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("%w: usuario %d", domain.ErrNotFound, usuarioID)
		}
		rol, err := r.Roles.GetByID(ctx, rolID)
		if err != nil {
			return err
		}
		if rol == nil {
			return fmt.Errorf("%w: rol %d", domain.ErrNotFound, rolID)
		}
		existente, err := r.UsuarioRoles.Get(ctx, usuarioID, rolID)
		if err != nil {
			return err
		}
		if existente != nil {
			return fmt.Errorf("%w: el usuario ya tiene el rol", domain.ErrConflict)
		}
		return r.UsuarioRoles.Create(ctx, ur)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(usuarioID)
	return &dto.UsuarioRolResponse{ID: ur.ID, UsuarioID: ur.UsuarioID, RolID: ur.RolID}, nil
}

// QuitarRol borra la asignación id siempre que pertenezca al usuario indicado.
func (uc *AsignacionUseCase) QuitarRol(ctx context.Context, usuarioID, asignacionID int64) error {
	ur, err := uc.repos.UsuarioRoles.GetByID(ctx, asignacionID)
	if err != nil {
		return err
	}
	if ur == nil || ur.UsuarioID != usuarioID {
		return domain.ErrNotFound
	}
	if ur.RolID == entity.RolSuperadminID {
		return domain.ErrReservedRole
	}
	if err := uc.repos.UsuarioRoles.Delete(ctx, asignacionID); err != nil {
		return err
	}
	uc.invalidate(usuarioID)
	return nil
}

func (uc *AsignacionUseCase) RolesDeUsuario(ctx context.Context, usuarioID int64) ([]dto.UsuarioRolResponse, error) {
	list, err := uc.repos.UsuarioRoles.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioRolResponse, 0, len(list))
	for _, ur := range list {
		out = append(out, dto.UsuarioRolResponse{ID: ur.ID, UsuarioID: ur.UsuarioID, RolID: ur.RolID})
	}
	return out, nil
}

// AsignarPermiso ErrNotFound si falta el rol o el permiso; ErrConflict si el par ya existe.
func (uc *AsignacionUseCase) AsignarPermiso(ctx context.Context, rolID, permisoID int64) (*dto.RolPermisoResponse, error) {
	rp := &entity.RolPermiso{RolID: rolID, PermisoID: permisoID}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		rol, err := r.Roles.GetByID(ctx, rolID)
		if err != nil {
			return err
		}
		if rol == nil {
			return fmt.Errorf("%w: rol %d", domain.ErrNotFound, rolID)
		}
		p, err := r.Permisos.GetByID(ctx, permisoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: permiso %d", domain.ErrNotFound, permisoID)
		}
		existente, err := r.RolPermisos.Get(ctx, rolID, permisoID)
		if err != nil {
			return err
		}
		if existente != nil {
			return fmt.Errorf("%w: el rol ya tiene el permiso", domain.ErrConflict)
		}
		return r.RolPermisos.Create(ctx, rp)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateAll()
	return &dto.RolPermisoResponse{ID: rp.ID, RolID: rp.RolID, PermisoID: rp.PermisoID}, nil
}

// QuitarPermiso los permisos del superadmin no se revocan por API.
func (uc *AsignacionUseCase) QuitarPermiso(ctx context.Context, rolID, asignacionID int64) error {
	if rolID == entity.RolSuperadminID {
		return domain.ErrReservedRole
	}
	rp, err := uc.repos.RolPermisos.GetByID(ctx, asignacionID)
	if err != nil {
		return err
	}
	if rp == nil || rp.RolID != rolID {
		return domain.ErrNotFound
	}
	if err := uc.repos.RolPermisos.Delete(ctx, asignacionID); err != nil {
		return err
	}
	uc.invalidateAll()
	return nil
}

func (uc *AsignacionUseCase) PermisosDeRol(ctx context.Context, rolID int64) ([]dto.RolPermisoResponse, error) {
	list, err := uc.repos.RolPermisos.ListByRol(ctx, rolID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolPermisoResponse, 0, len(list))
	for _, rp := range list {
		out = append(out, dto.RolPermisoResponse{ID: rp.ID, RolID: rp.RolID, PermisoID: rp.PermisoID})
	}
	return out, nil
}

func (uc *AsignacionUseCase) invalidate(usuarioID int64) {
	if uc.cache != nil {
		uc.cache.Invalidate(usuarioID)
	}
}

func (uc *AsignacionUseCase) invalidateAll() {
	if uc.cache != nil {
		uc.cache.InvalidateAll()
	}
}
