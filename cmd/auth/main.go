package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/kinomatch/internal/config"
	http_auth "github.com/humanbelnik/kinomatch/internal/delivery/http/auth"
	http_health "github.com/humanbelnik/kinomatch/internal/delivery/http/health"
	http_init "github.com/humanbelnik/kinomatch/internal/delivery/http/init"
	http_auth_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/auth"
	http_cors_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/cors"
	infra_pg_init "github.com/humanbelnik/kinomatch/internal/infra/postgres/init"
	infra_postgres_match "github.com/humanbelnik/kinomatch/internal/infra/postgres/match"
	infra_postgres_user "github.com/humanbelnik/kinomatch/internal/infra/postgres/user"
	infra_redis_init "github.com/humanbelnik/kinomatch/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/kinomatch/internal/infra/redis/session"
	session_auth "github.com/humanbelnik/kinomatch/internal/service/auth/session"
	usecase_auth "github.com/humanbelnik/kinomatch/internal/usecase/auth"
)

// Standalone auth server: registration, login and sessions only. Shares the
// database and session cache with the main app.
func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	if err := infra_pg_init.Migrate(ctx, pgConn); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := session_auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, sessionCache)
	authUC := usecase_auth.New(infra_postgres_user.New(pgConn), infra_postgres_match.New(pgConn), authService)

	controllerPool := http_init.NewControllerPool(http_init.WithMiddleware(
		http_cors_middleware.New(cfg.HTTP.CORSOrigins),
	))
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_auth.New(authUC, http_auth_middleware.New(authService).AuthRequired()))
	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Port)
}
