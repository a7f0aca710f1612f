package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/veterinaria-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/veterinaria-api/pkg/config"
)

func TestMigrate_ComandoDesconocido(t *testing.T) {
	err := Migrate(context.Background(), "postgres://x", "redo-all")
	assert.Error(t, err)
}

func TestRunMigrations_UsaDirectorioEmbebido(t *testing.T) {
	orig := gooseRun
	t.Cleanup(func() { gooseRun = orig })

	var gotCmd, gotDir string
	gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string) error {
		gotCmd, gotDir = command, dir
		return nil
	}

	require.NoError(t, runMigrations(context.Background(), nil, MigrateUp))
	assert.Equal(t, MigrateUp, gotCmd)
	assert.Equal(t, ".", gotDir)
}

func TestMigrations_IncluyeEsquemaAuth(t *testing.T) {
	b, err := migrations.FS.ReadFile("00001_auth.sql")
	require.NoError(t, err)
	sqlText := string(b)
	assert.Contains(t, sqlText, "-- +goose Up")
	assert.Contains(t, sqlText, "UNIQUE (usuario_id, rol_id)")
	assert.Contains(t, sqlText, "UNIQUE (rol_id, permiso_id)")
}

func TestIPv4DSN_HostLiteral(t *testing.T) {
	cfg := config.DBConfig{Host: "127.0.0.1", Port: 5432, User: "vet", Password: "x", DBName: "vet", SSLMode: "disable"}
	assert.Equal(t, cfg.DSN(), ipv4DSN(cfg))

	cfg.DatabaseURL = "postgres://vet:x@127.0.0.1:5433/vet"
	assert.Equal(t, "postgres://vet:x@127.0.0.1:5433/vet", ipv4DSN(cfg))
}
