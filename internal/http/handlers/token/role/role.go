// Package role реализует HTTP-обработчик, возвращающий роль (claim role)
// доверенного токена.
package role

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
	"github.com/kmalakhov/auth-service/internal/http/response"
)

// Handler обрабатывает запросы на чтение роли текущего пользователя.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Роль текущего пользователя
// @Tags Token
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Router /userrole [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.role"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userRole, ok := r.Context().Value(middlewarectx.Role).(string)
	if !ok {
		// Валидный токен без claim role: для чтения роли это отказ
		// в авторизации, а не внутренняя ошибка.
		log.Error("role missing in request context")
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("missing role claim"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]string{
		"role": userRole,
	}))
}
