package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

// PermisoRepo catálogo de permisos.
type PermisoRepo struct {
	db Querier
}

func NewPermisoRepository(db Querier) *PermisoRepo {
	return &PermisoRepo{db: db}
}

func (r *PermisoRepo) Create(ctx context.Context, p *entity.Permiso) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO permisos (nombre, descripcion) VALUES ($1, $2) RETURNING id`,
		p.Nombre, p.Descripcion,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: permiso %q", domain.ErrDuplicate, p.Nombre)
		}
		return fmt.Errorf("insert permiso: %w", err)
	}
	return nil
}

func (r *PermisoRepo) GetByID(ctx context.Context, id int64) (*entity.Permiso, error) {
	return r.getOne(ctx, `SELECT id, nombre, descripcion FROM permisos WHERE id = $1`, id)
}

func (r *PermisoRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Permiso, error) {
	return r.getOne(ctx, `SELECT id, nombre, descripcion FROM permisos WHERE nombre = $1`, nombre)
}

func (r *PermisoRepo) getOne(ctx context.Context, query string, arg any) (*entity.Permiso, error) {
	var p entity.Permiso
	if err := r.db.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Nombre, &p.Descripcion); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permiso: %w", err)
	}
	return &p, nil
}

func (r *PermisoRepo) Update(ctx context.Context, p *entity.Permiso) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE permisos SET nombre = $2, descripcion = $3 WHERE id = $1`,
		p.ID, p.Nombre, p.Descripcion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: permiso %q", domain.ErrDuplicate, p.Nombre)
		}
		return fmt.Errorf("update permiso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PermisoRepo) List(ctx context.Context) ([]*entity.Permiso, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre, descripcion FROM permisos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PermisoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM permisos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete permiso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
