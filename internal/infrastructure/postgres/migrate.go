package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/veterinaria-api/internal/infrastructure/postgres/migrations"
)

// Comandos de goose aceptados por cmd/migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// gooseRun punto de reemplazo para tests.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string) error {
	return goose.RunContext(ctx, command, db, dir)
}

// Migrate aplica el comando goose indicado con las migraciones embebidas.
func Migrate(ctx context.Context, dsn, command string) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus:
	default:
		return fmt.Errorf("comando de migración no soportado: %q", command)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return runMigrations(ctx, db, command)
}

func runMigrations(ctx context.Context, db *sql.DB, command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseRun(ctx, command, db, "."); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
