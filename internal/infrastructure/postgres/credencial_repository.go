package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/veterinaria-api/internal/domain"
	"github.com/jhoicas/veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.CredencialRepository = (*CredencialRepo)(nil)

const credencialColumns = `id, usuario_id, usuario, contrasena, activo, created_at, updated_at`

// CredencialRepo persistencia de credenciales sobre PostgreSQL.
// Contrasena siempre llega ya hasheada desde el caso de uso.
type CredencialRepo struct {
	db Querier
}

func NewCredencialRepository(db Querier) *CredencialRepo {
	return &CredencialRepo{db: db}
}

// Create inserta la credencial. Un handle o usuario_id repetido es ErrDuplicate;
// un usuario_id inexistente es ErrNotFound.
func (r *CredencialRepo) Create(ctx context.Context, c *entity.Credencial) error {
	query := `
		INSERT INTO credenciales (usuario_id, usuario, contrasena, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, c.UsuarioID, c.Usuario, c.Contrasena, c.Activo).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: credencial para %q", domain.ErrDuplicate, c.Usuario)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: usuario %d", domain.ErrNotFound, c.UsuarioID)
		}
		return fmt.Errorf("insert credencial: %w", err)
	}
	return nil
}

func (r *CredencialRepo) GetByID(ctx context.Context, id int64) (*entity.Credencial, error) {
	return r.getOne(ctx, `SELECT `+credencialColumns+` FROM credenciales WHERE id = $1`, id)
}

// GetByUsuario búsqueda exacta por handle de login.
func (r *CredencialRepo) GetByUsuario(ctx context.Context, usuario string) (*entity.Credencial, error) {
	return r.getOne(ctx, `SELECT `+credencialColumns+` FROM credenciales WHERE usuario = $1`, usuario)
}

func (r *CredencialRepo) GetByUsuarioID(ctx context.Context, usuarioID int64) (*entity.Credencial, error) {
	return r.getOne(ctx, `SELECT `+credencialColumns+` FROM credenciales WHERE usuario_id = $1`, usuarioID)
}

func (r *CredencialRepo) getOne(ctx context.Context, query string, arg any) (*entity.Credencial, error) {
	var c entity.Credencial
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.UsuarioID, &c.Usuario, &c.Contrasena, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credencial: %w", err)
	}
	return &c, nil
}

// Update reemplaza handle, hash y estado.
func (r *CredencialRepo) Update(ctx context.Context, c *entity.Credencial) error {
	query := `
		UPDATE credenciales SET usuario = $2, contrasena = $3, activo = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, c.ID, c.Usuario, c.Contrasena, c.Activo).Scan(&c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: credencial para %q", domain.ErrDuplicate, c.Usuario)
		}
		return fmt.Errorf("update credencial: %w", err)
	}
	return nil
}

func (r *CredencialRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM credenciales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete credencial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
