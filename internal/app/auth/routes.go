// Package auth собирает HTTP-приложение сервиса аутентификации:
// маршруты, хранилище, сервер и его жизненный цикл.
package auth

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/kmalakhov/auth-service/internal/http/handlers/admin/list"
	"github.com/kmalakhov/auth-service/internal/http/handlers/admin/setrole"
	"github.com/kmalakhov/auth-service/internal/http/handlers/auth/signin"
	"github.com/kmalakhov/auth-service/internal/http/handlers/token/claims"
	"github.com/kmalakhov/auth-service/internal/http/handlers/token/role"
	"github.com/kmalakhov/auth-service/internal/http/handlers/token/subject"
	"github.com/kmalakhov/auth-service/internal/http/handlers/token/tokenid"
	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
	services "github.com/kmalakhov/auth-service/internal/services/auth"
)

// adminRole — роль, требуемая для административных операций.
const adminRole = "Admin"

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытая конечная точка приёма учётных данных
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
			r.Post("/signin", signin.New(logger, authService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/claims", claims.New(logger).ServeHTTP)
			r.Get("/username", subject.New(logger).ServeHTTP)
			r.Get("/userrole", role.New(logger).ServeHTTP)
			r.Get("/jwtid", tokenid.New(logger).ServeHTTP)

			// Административные операции
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(adminRole, logger))
				r.Get("/auths", list.New(logger, authService).ServeHTTP)
				r.Post("/auths", setrole.New(logger, authService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
