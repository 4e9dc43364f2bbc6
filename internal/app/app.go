package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/humanbelnik/kinomatch/internal/config"
	http_auth "github.com/humanbelnik/kinomatch/internal/delivery/http/auth"
	http_favorite "github.com/humanbelnik/kinomatch/internal/delivery/http/favorite"
	http_friend "github.com/humanbelnik/kinomatch/internal/delivery/http/friend"
	http_health "github.com/humanbelnik/kinomatch/internal/delivery/http/health"
	http_init "github.com/humanbelnik/kinomatch/internal/delivery/http/init"
	http_match "github.com/humanbelnik/kinomatch/internal/delivery/http/match"
	http_message "github.com/humanbelnik/kinomatch/internal/delivery/http/message"
	http_access_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/auth"
	http_cors_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/cors"
	http_metrics_middleware "github.com/humanbelnik/kinomatch/internal/delivery/http/middleware/metrics"
	http_movie "github.com/humanbelnik/kinomatch/internal/delivery/http/movie"
	http_note "github.com/humanbelnik/kinomatch/internal/delivery/http/note"
	http_notification "github.com/humanbelnik/kinomatch/internal/delivery/http/notification"
	http_swagger "github.com/humanbelnik/kinomatch/internal/delivery/http/swagger"
	http_user "github.com/humanbelnik/kinomatch/internal/delivery/http/user"
	http_watched "github.com/humanbelnik/kinomatch/internal/delivery/http/watched"
	ws_notification "github.com/humanbelnik/kinomatch/internal/delivery/ws/notification"
	infra_pg_init "github.com/humanbelnik/kinomatch/internal/infra/postgres/init"
	infra_postgres_favorite "github.com/humanbelnik/kinomatch/internal/infra/postgres/favorite"
	infra_postgres_friendship "github.com/humanbelnik/kinomatch/internal/infra/postgres/friendship"
	infra_postgres_match "github.com/humanbelnik/kinomatch/internal/infra/postgres/match"
	infra_postgres_message "github.com/humanbelnik/kinomatch/internal/infra/postgres/message"
	infra_postgres_movie "github.com/humanbelnik/kinomatch/internal/infra/postgres/movie"
	infra_postgres_note "github.com/humanbelnik/kinomatch/internal/infra/postgres/note"
	infra_postgres_notification "github.com/humanbelnik/kinomatch/internal/infra/postgres/notification"
	infra_postgres_user "github.com/humanbelnik/kinomatch/internal/infra/postgres/user"
	infra_postgres_watched "github.com/humanbelnik/kinomatch/internal/infra/postgres/watched"
	infra_redis_init "github.com/humanbelnik/kinomatch/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/kinomatch/internal/infra/redis/session"
	infra_s3 "github.com/humanbelnik/kinomatch/internal/infra/s3"
	"github.com/humanbelnik/kinomatch/internal/infra/s3mock"
	infra_tmdb "github.com/humanbelnik/kinomatch/internal/infra/tmdb"
	session_auth "github.com/humanbelnik/kinomatch/internal/service/auth/session"
	usecase_auth "github.com/humanbelnik/kinomatch/internal/usecase/auth"
	usecase_favorite "github.com/humanbelnik/kinomatch/internal/usecase/favorite"
	usecase_friendship "github.com/humanbelnik/kinomatch/internal/usecase/friendship"
	usecase_match "github.com/humanbelnik/kinomatch/internal/usecase/match"
	usecase_message "github.com/humanbelnik/kinomatch/internal/usecase/message"
	usecase_movie "github.com/humanbelnik/kinomatch/internal/usecase/movie"
	usecase_note "github.com/humanbelnik/kinomatch/internal/usecase/note"
	usecase_notification "github.com/humanbelnik/kinomatch/internal/usecase/notification"
	usecase_user "github.com/humanbelnik/kinomatch/internal/usecase/user"
	usecase_watched "github.com/humanbelnik/kinomatch/internal/usecase/watched"
)

func Go(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	if err := infra_pg_init.Migrate(ctx, pgConn); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var images usecase_user.ImageStorage
	if cfg.Storage.Endpoint == "" && os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		slog.Warn("no object storage configured, keeping uploads in memory")
		images = s3mock.New()
	} else {
		s3conn := infra_s3.MustEstablishConn(cfg.Storage)
		storage, err := infra_s3.New(cfg.Storage.Bucket, s3conn, cfg.Storage.Prefix, cfg.Storage.PublicURL)
		if err != nil {
			log.Fatalf("failed to init image storage: %v", err)
		}
		images = storage
	}

	catalog := infra_tmdb.New(cfg.TMDB)

	userRepository := infra_postgres_user.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)
	favoriteRepository := infra_postgres_favorite.New(pgConn)
	matchRepository := infra_postgres_match.New(pgConn)
	watchedRepository := infra_postgres_watched.New(pgConn)
	noteRepository := infra_postgres_note.New(pgConn)
	messageRepository := infra_postgres_message.New(pgConn)
	notificationRepository := infra_postgres_notification.New(pgConn)
	friendshipRepository := infra_postgres_friendship.New(pgConn)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := session_auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, sessionCache)
	authMiddlewares := http_auth_middleware.New(authService)
	authMiddleware := authMiddlewares.AuthRequired()

	hub := ws_notification.NewHub()
	go hub.Run(ctx)

	notificationUC := usecase_notification.New(notificationRepository, hub)
	movieUC := usecase_movie.New(catalog, movieRepository)
	favoriteUC := usecase_favorite.New(favoriteRepository, movieUC)
	authUC := usecase_auth.New(userRepository, matchRepository, authService)
	userUC := usecase_user.New(userRepository, favoriteRepository, images)
	matchUC := usecase_match.New(
		matchRepository,
		userRepository,
		favoriteRepository,
		watchedRepository,
		movieRepository,
		notificationUC,
		images,
	)
	watchedUC := usecase_watched.New(watchedRepository, matchRepository, movieUC, notificationUC)
	noteUC := usecase_note.New(noteRepository, matchRepository)
	messageUC := usecase_message.New(messageRepository, matchRepository, friendshipRepository, userRepository, hub)
	friendshipUC := usecase_friendship.New(friendshipRepository, userRepository, notificationUC)

	go runMessageCleanup(ctx, messageUC, cfg.Jobs.MessageCleanup)

	controllerPool := http_init.NewControllerPool(http_init.WithMiddleware(
		http_cors_middleware.New(cfg.HTTP.CORSOrigins),
		http_metrics_middleware.Observe(),
		http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode),
	))
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_swagger.New(cfg.HTTP.PublicURL))
	controllerPool.Add(http_auth.New(authUC, authMiddleware))
	controllerPool.Add(http_user.New(userUC, authMiddleware))
	controllerPool.Add(http_movie.New(movieUC))
	controllerPool.Add(http_favorite.New(favoriteUC, authMiddleware))
	controllerPool.Add(http_match.New(matchUC, authMiddleware))
	controllerPool.Add(http_watched.New(watchedUC, authMiddleware))
	controllerPool.Add(http_note.New(noteUC, authMiddleware))
	controllerPool.Add(http_message.New(messageUC, authMiddleware))
	controllerPool.Add(http_notification.New(notificationUC, authMiddleware))
	controllerPool.Add(http_friend.New(friendshipUC, authMiddleware))
	controllerPool.Add(ws_notification.NewController(hub, authMiddlewares.AuthRequiredWS()))

	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Port)
}

// runMessageCleanup purges expired messages on every tick until ctx is done.
func runMessageCleanup(ctx context.Context, uc *usecase_message.Usecase, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.Cleanup(ctx)
			if err != nil {
				slog.Error("failed to clean up expired messages", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				slog.Info("expired messages removed", slog.Int64("count", n))
			}
		}
	}
}
