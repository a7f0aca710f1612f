package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, tipo_documento, numero_documento, nombre, telefono, direccion, email, created_at, updated_at`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

// Create inserta el usuario y completa ID y timestamps.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (tipo_documento, numero_documento, nombre, telefono, direccion, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		u.TipoDocumento, u.NumeroDocumento, u.Nombre, u.Telefono, u.Direccion, u.Email,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero_documento %s", domain.ErrDuplicate, u.NumeroDocumento)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.getOne(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByDocumento obtiene un usuario por número de documento.
func (r *UsuarioRepo) GetByDocumento(ctx context.Context, numero string) (*entity.Usuario, error) {
	return r.getOne(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE numero_documento = $1`, numero)
}

func (r *UsuarioRepo) getOne(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.TipoDocumento, &u.NumeroDocumento, &u.Nombre, &u.Telefono, &u.Direccion, &u.Email,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza los datos de identidad del usuario.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET tipo_documento = $2, numero_documento = $3, nombre = $4, telefono = $5, direccion = $6,
		    email = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		u.ID, u.TipoDocumento, u.NumeroDocumento, u.Nombre, u.Telefono, u.Direccion, u.Email,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero_documento %s", domain.ErrDuplicate, u.NumeroDocumento)
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios con paginación, más recientes primero.
func (r *UsuarioRepo) List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.TipoDocumento, &u.NumeroDocumento, &u.Nombre, &u.Telefono, &u.Direccion, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID; su credencial cae en cascada.
func (r *UsuarioRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
