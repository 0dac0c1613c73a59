package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/response"
)

// RequireRole возвращает middleware, пропускающий запрос дальше только если
// роль из доверенного токена строго равна requiredRole. Сравнение строковое,
// с учётом регистра, без подстановок.
//
// Middleware рассчитан на работу после JWTMiddleware: роль берётся из
// контекста. Отсутствие роли в контексте — отказ, а не паника.
func RequireRole(requiredRole string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "auth.RequireRole"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, ok := r.Context().Value(Role).(string)
			if !ok || role != requiredRole {
				log.Error("access denied",
					slog.String("required_role", requiredRole),
					slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
