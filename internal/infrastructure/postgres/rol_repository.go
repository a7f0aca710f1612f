package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación de RolRepository.
type RolRepo struct {
	db Querier
}

func NewRolRepository(db Querier) *RolRepo {
	return &RolRepo{db: db}
}

func (r *RolRepo) Create(ctx context.Context, rol *entity.Rol) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (nombre, descripcion) VALUES ($1, $2) RETURNING id`,
		rol.Nombre, rol.Descripcion,
	).Scan(&rol.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rol %q", domain.ErrDuplicate, rol.Nombre)
		}
		return fmt.Errorf("insert rol: %w", err)
	}
	return nil
}

func (r *RolRepo) GetByID(ctx context.Context, id int64) (*entity.Rol, error) {
	return r.getOne(ctx, `SELECT id, nombre, descripcion FROM roles WHERE id = $1`, id)
}

func (r *RolRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Rol, error) {
	return r.getOne(ctx, `SELECT id, nombre, descripcion FROM roles WHERE nombre = $1`, nombre)
}

func (r *RolRepo) getOne(ctx context.Context, query string, arg any) (*entity.Rol, error) {
	var rol entity.Rol
	if err := r.db.QueryRow(ctx, query, arg).Scan(&rol.ID, &rol.Nombre, &rol.Descripcion); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol: %w", err)
	}
	return &rol, nil
}

func (r *RolRepo) Update(ctx context.Context, rol *entity.Rol) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE roles SET nombre = $2, descripcion = $3 WHERE id = $1`,
		rol.ID, rol.Nombre, rol.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rol %q", domain.ErrDuplicate, rol.Nombre)
		}
		return fmt.Errorf("update rol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los roles salvo el superadmin.
func (r *RolRepo) List(ctx context.Context) ([]*entity.Rol, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nombre, descripcion FROM roles WHERE id <> $1 ORDER BY nombre`,
		entity.RolSuperadminID,
	)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

// Delete falla con ErrHasDependents si aún hay usuarios o permisos asignados.
func (r *RolRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete rol: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
