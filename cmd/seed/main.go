// seed siembra el catálogo de permisos, los permisos del superadmin (rol 1) y el usuario
// superadmin inicial tomado de SEED_ADMIN_USUARIO / SEED_ADMIN_CONTRASENA.
// Es idempotente: puede correrse después de cada despliegue.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/veterinaria-api/pkg/config"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.Seed.AdminUsuario == "" {
		log.Warn().Msg("SEED_ADMIN_USUARIO vacío: solo se siembra el catálogo de permisos")
	}

	uc := usecase.NewSeedUseCase(postgres.NewTxRunner(pool), password.NewBcryptHasher(cfg.Auth.BcryptCost), log.Component("seed"))
	if _, err := uc.Run(ctx, usecase.SeedInput{
		AdminUsuario:    cfg.Seed.AdminUsuario,
		AdminContrasena: cfg.Seed.AdminContrasena,
		AdminDocumento:  cfg.Seed.AdminDocumento,
		AdminNombre:     cfg.Seed.AdminNombre,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
}
