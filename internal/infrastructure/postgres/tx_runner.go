package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/veterinaria-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// beginner lo cumple *pgxpool.Pool y el pool de pgxmock.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db beginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos arma todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepos(q Querier) repository.Repos {
	return repository.Repos{
		Usuarios:     NewUsuarioRepository(q),
		Credenciales: NewCredencialRepository(q),
		Roles:        NewRolRepository(q),
		Permisos:     NewPermisoRepository(q),
		RolPermisos:  NewRolPermisoRepository(q),
		UsuarioRoles: NewUsuarioRolRepository(q),
	}
}
