// Package middlewarectx содержит HTTP middleware для проверки JWT токенов
// и ограничения доступа по ролям.
//
// JWTMiddleware проверяет наличие и валидность JWT в заголовке Authorization
// и в случае успеха добавляет в контекст имя пользователя, роль и
// идентификатор токена. Сопоставление claims с личностью вызывающего
// фиксировано: sub становится именем, role — ролью.
//
// Любая ошибка проверки (подпись, издатель, срок, искажённая структура)
// возвращается одинаково: HTTP 401 Unauthorized без деталей.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/response"
	"github.com/kmalakhov/auth-service/internal/lib/jwt"
	"github.com/kmalakhov/auth-service/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя (claim sub) в контексте
	User Key = "username"
	// Role — ключ для роли пользователя (claim role) в контексте
	Role Key = "role"
	// TokenID — ключ для уникального идентификатора токена (claim jti)
	TokenID Key = "token_id"
	// Claims — ключ для полного набора claims доверенного токена
	Claims Key = "claims"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization.
//
// Если токен валиден, имя пользователя, роль, идентификатор токена и полный
// набор claims попадают в контекст запроса, иначе возвращается
// HTTP 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "auth.Jwtmiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, claims.Subject)
			ctx = context.WithValue(ctx, Role, claims.Role)
			ctx = context.WithValue(ctx, TokenID, claims.ID)
			ctx = context.WithValue(ctx, Claims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
