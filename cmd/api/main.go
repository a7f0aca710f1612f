package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/veterinaria-api/internal/application/auth"
	"github.com/jhoicas/veterinaria-api/internal/application/usecase"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/cache"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/metrics"
	"github.com/jhoicas/veterinaria-api/internal/infrastructure/postgres"
	redisinfra "github.com/jhoicas/veterinaria-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/veterinaria-api/internal/interfaces/http"
	"github.com/jhoicas/veterinaria-api/pkg/config"
	"github.com/jhoicas/veterinaria-api/pkg/jwt"
	"github.com/jhoicas/veterinaria-api/pkg/logger"
	"github.com/jhoicas/veterinaria-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	m := metrics.New()
	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de permisos: TTL 0 la desactiva y cada petición resuelve en fresco.
	var permCache auth.PermissionCache
	if cfg.Auth.PermissionCacheTTL > 0 {
		permCache = cache.NewTTLCache[*auth.Resolucion](cfg.Auth.PermissionCacheSize, cfg.Auth.PermissionCacheTTL, m)
	}
	resolver := auth.NewPermissionResolver(repos, permCache, log.Component("permisos"))

	issuer, err := jwt.NewIssuer(jwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessExpiration,
		RefreshTTL:    cfg.JWT.RefreshExpiration,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}
	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)

	authDeps := auth.Deps{
		Credenciales:     repos.Credenciales,
		Usuarios:         repos.Usuarios,
		Tx:               txRunner,
		Resolver:         resolver,
		Hasher:           hasher,
		Tokens:           issuer,
		RefreshThreshold: cfg.JWT.RefreshThreshold,
		Metrics:          m,
		Log:              log.Component("auth"),
	}

	// Redis opcional: sin REDIS_URL el logout es solo un acuse.
	var revocados httpRouter.RevocationChecker
	if cfg.Redis.URL != "" {
		client, err := redisinfra.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		denylist := redisinfra.NewTokenDenylist(client)
		authDeps.Denylist = denylist
		revocados = denylist
		log.Info().Msg("denylist de tokens en Redis activa")
	}

	authUC := auth.NewAuthUseCase(authDeps)
	usuarioUC := usecase.NewUsuarioUseCase(repos.Usuarios, repos.UsuarioRoles)
	credencialUC := usecase.NewCredencialUseCase(repos.Credenciales, repos.Usuarios, hasher)
	rolUC := usecase.NewRolUseCase(repos.Roles, repos.UsuarioRoles, repos.RolPermisos, resolver)
	permisoUC := usecase.NewPermisoUseCase(repos.Permisos, repos.RolPermisos, resolver)
	asignacionUC := usecase.NewAsignacionUseCase(txRunner, repos, resolver)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(corsConfig(cfg.Auth.CORSOrigins)))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Veterinaria API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		CredencialUC: credencialUC,
		RolUC:        rolUC,
		PermisoUC:    permisoUC,
		AsignacionUC: asignacionUC,
		Tokens:       issuer,
		Permisos:     resolver,
		Denylist:     revocados,
		Metrics:      m,
		Cookies: httpRouter.CookieConfig{
			Secure:     cfg.Auth.CookieSecure,
			AccessTTL:  cfg.JWT.AccessExpiration,
			RefreshTTL: cfg.JWT.RefreshExpiration,
		},
		LoginRateLimit: cfg.Auth.LoginRateLimit,
		AppName:        cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// corsConfig con orígenes explícitos se permiten credenciales (cookies de sesión);
// fiber no admite credenciales con comodín.
func corsConfig(origins string) cors.Config {
	if origins == "" || origins == "*" {
		return cors.Config{AllowOrigins: "*"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}
}
