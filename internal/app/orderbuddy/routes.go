package orderbuddy

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/salmansarfraz67/Order-Buddy/docs" // Спецификация Swagger
	"github.com/salmansarfraz67/Order-Buddy/internal/config"
	accountget "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/account/get"
	accountupdate "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/account/update"
	adminlist "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/admin/list"
	adminremove "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/admin/remove"
	adminstatus "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/admin/status"
	adminupdate "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/admin/update"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/analytics/revenue"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/analytics/summary"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/auth/login"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/auth/register"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/customer/lookup"
	ordercreate "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/create"
	orderexport "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/export"
	orderlisthandler "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/list"
	orderproducts "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/products"
	orderremove "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/remove"
	orderupdate "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/update"
	orderwhatsapp "github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/order/whatsapp"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/handlers/health"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	accessservice "github.com/salmansarfraz67/Order-Buddy/internal/services/access"
	analyticsservice "github.com/salmansarfraz67/Order-Buddy/internal/services/analytics"
	authservice "github.com/salmansarfraz67/Order-Buddy/internal/services/auth"
	ordersservice "github.com/salmansarfraz67/Order-Buddy/internal/services/orders"
	"github.com/salmansarfraz67/Order-Buddy/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cfg *config.Config,
	db *storage.Storage,
	authService *authservice.Service,
	accessService *accessservice.Service,
	orderService *ordersservice.Service,
	analyticsService *analyticsservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(10, 30)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Get("/account", accountget.New(logger, accessService).ServeHTTP)
			r.Put("/account", accountupdate.New(logger, accessService).ServeHTTP)

			// Заказы и аналитика дополнительно закрыты решением о доступе.
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AccessGateMiddleware(logger, accessService))

				r.Post("/orders", ordercreate.New(logger, orderService).ServeHTTP)
				r.Put("/orders/{id}", orderupdate.New(logger, orderService).ServeHTTP)
				r.Delete("/orders/{id}", orderremove.New(logger, orderService).ServeHTTP)
				r.Get("/orders/list", orderlisthandler.New(logger, orderService).ServeHTTP)
				r.Get("/orders/export", orderexport.New(logger, orderService).ServeHTTP)
				r.Get("/orders/products", orderproducts.New(logger, orderService).ServeHTTP)
				r.Get("/orders/{id}/whatsapp", orderwhatsapp.New(logger, orderService, accessService).ServeHTTP)
				r.Get("/customers/lookup", lookup.New(logger, orderService).ServeHTTP)
				r.Get("/analytics/revenue", revenue.New(logger, analyticsService).ServeHTTP)
				r.Get("/analytics/summary", summary.New(logger, analyticsService).ServeHTTP)
			})

			// Административная панель
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger, cfg.AdminPIN))

				r.Get("/admin/accounts", adminlist.New(logger, accessService).ServeHTTP)
				r.Put("/admin/accounts/{uid}/status", adminstatus.New(logger, accessService).ServeHTTP)
				r.Put("/admin/accounts/{uid}", adminupdate.New(logger, accessService).ServeHTTP)
				r.Delete("/admin/accounts/{uid}", adminremove.New(logger, accessService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
