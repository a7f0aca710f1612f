// migrate aplica las migraciones embebidas con goose.
//
// Uso: go run ./cmd/migrate [up|down|status]   (por defecto: up)
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/veterinaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/veterinaria-api/pkg/config"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
)

func main() {
	command := postgres.MigrateUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString(), command); err != nil {
		log.Fatal().Err(err).Str("comando", command).Msg("migración")
	}
	log.Info().Str("comando", command).Msg("migración completada")
}
