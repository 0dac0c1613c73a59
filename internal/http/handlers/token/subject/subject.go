// Package subject реализует HTTP-обработчик, возвращающий имя пользователя
// (claim sub) доверенного токена.
package subject

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
	"github.com/kmalakhov/auth-service/internal/http/response"
)

// Handler обрабатывает запросы на чтение имени текущего пользователя.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Имя текущего пользователя
// @Tags Token
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Router /username [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.subject"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok {
		log.Error("username missing in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing token claims"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]string{
		"username": username,
	}))
}
