package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier subconjunto común de *pgxpool.Pool, pgx.Tx y pgxmock; los repositorios
// lo reciben para funcionar igual dentro y fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation 23503: la fila referenciada no existe o tiene dependientes.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
