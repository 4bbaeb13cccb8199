// Package orderbuddy собирает приложение из хранилища, кеша, ленты
// событий и HTTP-сервера и управляет его жизненным циклом.
package orderbuddy

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/salmansarfraz67/Order-Buddy/internal/cache"
	"github.com/salmansarfraz67/Order-Buddy/internal/config"
	"github.com/salmansarfraz67/Order-Buddy/internal/feed"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/jwt"
	"github.com/salmansarfraz67/Order-Buddy/internal/migrations"
	accessservice "github.com/salmansarfraz67/Order-Buddy/internal/services/access"
	analyticsservice "github.com/salmansarfraz67/Order-Buddy/internal/services/analytics"
	authservice "github.com/salmansarfraz67/Order-Buddy/internal/services/auth"
	ordersservice "github.com/salmansarfraz67/Order-Buddy/internal/services/orders"
	"github.com/salmansarfraz67/Order-Buddy/internal/storage"
)

// App — собранное приложение с запущенными зависимостями.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *storage.Storage
	amqpConn *amqp.Connection
	feed     *feed.Feed
	amqpCh   *amqp.Channel
}

// New поднимает зависимости, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	amqpConn, err := feed.Connect(cfg.AddressRabbit, cfg.RetriesRabbit, cfg.DelayRabbit)
	if err != nil {
		return nil, err
	}
	amqpCh, err := feed.SetupChannel(amqpConn)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	accessService := accessservice.New(db, logger, cfg.TrialDays, nil)
	orderService := ordersservice.New(db, feed.NewPublisher(amqpCh), logger, nil)
	analyticsService := analyticsservice.New(db, cacheRedis, logger, nil)

	orderFeed := feed.New(db, logger)
	// Инвалидация кеша аналитики — внутрипроцессный подписчик ленты.
	orderFeed.SubscribeAll(func(s feed.Snapshot) {
		analyticsService.OnOrdersChanged(s.AccountUID)
	})

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, authService, accessService, orderService, analyticsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		amqpConn: amqpConn,
		amqpCh:   amqpCh,
		feed:     orderFeed,
	}, nil
}

// Run запускает обработку событий и HTTP-сервер, блокируется до отмены
// контекста или фатальной ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	if err := a.feed.Run(ctx, a.amqpCh); err != nil {
		return err
	}

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
		err := a.server.Shutdown(timeoutCtx)
		_ = a.amqpCh.Close()
		_ = a.amqpConn.Close()
		_ = a.db.DB.Close()
		return err
	}
}
