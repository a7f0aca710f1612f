package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var (
	_ repository.RolPermisoRepository = (*RolPermisoRepo)(nil)
	_ repository.UsuarioRolRepository = (*UsuarioRolRepo)(nil)
)

// RolPermisoRepo tabla rol_permisos. El índice único (rol_id, permiso_id) convierte
// una inserción concurrente repetida en ErrConflict.
type RolPermisoRepo struct {
	db Querier
}

func NewRolPermisoRepository(db Querier) *RolPermisoRepo {
	return &RolPermisoRepo{db: db}
}

func (r *RolPermisoRepo) Create(ctx context.Context, rp *entity.RolPermiso) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO rol_permisos (rol_id, permiso_id) VALUES ($1, $2) RETURNING id`,
		rp.RolID, rp.PermisoID,
	).Scan(&rp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el rol %d ya tiene el permiso %d", domain.ErrConflict, rp.RolID, rp.PermisoID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: rol o permiso inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert rol_permiso: %w", err)
	}
	return nil
}

func (r *RolPermisoRepo) GetByID(ctx context.Context, id int64) (*entity.RolPermiso, error) {
	return scanRolPermiso(r.db.QueryRow(ctx,
		`SELECT id, rol_id, permiso_id FROM rol_permisos WHERE id = $1`, id))
}

func (r *RolPermisoRepo) Get(ctx context.Context, rolID, permisoID int64) (*entity.RolPermiso, error) {
	return scanRolPermiso(r.db.QueryRow(ctx,
		`SELECT id, rol_id, permiso_id FROM rol_permisos WHERE rol_id = $1 AND permiso_id = $2`, rolID, permisoID))
}

func scanRolPermiso(row interface{ Scan(...any) error }) (*entity.RolPermiso, error) {
	var rp entity.RolPermiso
	if err := row.Scan(&rp.ID, &rp.RolID, &rp.PermisoID); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol_permiso: %w", err)
	}
	return &rp, nil
}

func (r *RolPermisoRepo) ListByRol(ctx context.Context, rolID int64) ([]*entity.RolPermiso, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, rol_id, permiso_id FROM rol_permisos WHERE rol_id = $1 ORDER BY id`, rolID)
	if err != nil {
		return nil, fmt.Errorf("list rol_permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.RolPermiso
	for rows.Next() {
		var rp entity.RolPermiso
		if err := rows.Scan(&rp.ID, &rp.RolID, &rp.PermisoID); err != nil {
			return nil, fmt.Errorf("scan rol_permiso: %w", err)
		}
		list = append(list, &rp)
	}
	return list, rows.Err()
}

func (r *RolPermisoRepo) CountByPermiso(ctx context.Context, permisoID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM rol_permisos WHERE permiso_id = $1`, permisoID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rol_permisos: %w", err)
	}
	return n, nil
}

func (r *RolPermisoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rol_permisos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rol_permiso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UsuarioRolRepo tabla usuario_roles, con el mismo contrato de unicidad que RolPermisoRepo.
type UsuarioRolRepo struct {
	db Querier
}

func NewUsuarioRolRepository(db Querier) *UsuarioRolRepo {
	return &UsuarioRolRepo{db: db}
}

func (r *UsuarioRolRepo) Create(ctx context.Context, ur *entity.UsuarioRol) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO usuario_roles (usuario_id, rol_id) VALUES ($1, $2) RETURNING id`,
		ur.UsuarioID, ur.RolID,
	).Scan(&ur.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el usuario %d ya tiene el rol %d", domain.ErrConflict, ur.UsuarioID, ur.RolID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: usuario o rol inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert usuario_rol: %w", err)
	}
	return nil
}

func (r *UsuarioRolRepo) GetByID(ctx context.Context, id int64) (*entity.UsuarioRol, error) {
	return scanUsuarioRol(r.db.QueryRow(ctx,
		`SELECT id, usuario_id, rol_id FROM usuario_roles WHERE id = $1`, id))
}

func (r *UsuarioRolRepo) Get(ctx context.Context, usuarioID, rolID int64) (*entity.UsuarioRol, error) {
	return scanUsuarioRol(r.db.QueryRow(ctx,
		`SELECT id, usuario_id, rol_id FROM usuario_roles WHERE usuario_id = $1 AND rol_id = $2`, usuarioID, rolID))
}

func scanUsuarioRol(row interface{ Scan(...any) error }) (*entity.UsuarioRol, error) {
	var ur entity.UsuarioRol
	if err := row.Scan(&ur.ID, &ur.UsuarioID, &ur.RolID); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario_rol: %w", err)
	}
	return &ur, nil
}

func (r *UsuarioRolRepo) ListByUsuario(ctx context.Context, usuarioID int64) ([]*entity.UsuarioRol, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, usuario_id, rol_id FROM usuario_roles WHERE usuario_id = $1 ORDER BY id`, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list usuario_roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsuarioRol
	for rows.Next() {
		var ur entity.UsuarioRol
		if err := rows.Scan(&ur.ID, &ur.UsuarioID, &ur.RolID); err != nil {
			return nil, fmt.Errorf("scan usuario_rol: %w", err)
		}
		list = append(list, &ur)
	}
	return list, rows.Err()
}

func (r *UsuarioRolRepo) CountByRol(ctx context.Context, rolID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM usuario_roles WHERE rol_id = $1`, rolID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count usuario_roles: %w", err)
	}
	return n, nil
}

func (r *UsuarioRolRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuario_roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario_rol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
