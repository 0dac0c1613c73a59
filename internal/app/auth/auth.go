package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/kmalakhov/auth-service/internal/cache"
	"github.com/kmalakhov/auth-service/internal/config"
	"github.com/kmalakhov/auth-service/internal/lib/jwt"
	"github.com/kmalakhov/auth-service/internal/migrations"
	services "github.com/kmalakhov/auth-service/internal/services/auth"
	"github.com/kmalakhov/auth-service/internal/storage"
	"github.com/kmalakhov/auth-service/internal/storage/memory"
	"github.com/kmalakhov/auth-service/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер сервиса аутентификации.
type App struct {
	server *http.Server
	logger *slog.Logger
}

// New собирает приложение: хранилище по типу из конфига, опциональный
// redis-кэш записей о ролях, JWT и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		store = storage.NewCachedStore(store, cacheRedis, cfg.CacheTTL)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.Issuer, cfg.SecretKey, cfg.TokenTTL())
	authService := services.NewAuthService(store, jwtMaker)

	limiter := rate.NewLimiter(1, 3)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, limiter)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

// newStore выбирает реализацию хранилища по конфигу. По умолчанию —
// встроенный статический справочник.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageType {
	case "postgres":
		db, err := repository.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, "./migrations"); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return memory.New(), nil
	}
}

// Run запускает сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
