// Package tokenid реализует HTTP-обработчик, возвращающий уникальный
// идентификатор (claim jti) доверенного токена.
package tokenid

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
	"github.com/kmalakhov/auth-service/internal/http/response"
)

// Handler обрабатывает запросы на чтение идентификатора текущего токена.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Идентификатор текущего токена
// @Tags Token
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Router /jwtid [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.tokenid"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tokenID, ok := r.Context().Value(middlewarectx.TokenID).(string)
	if !ok {
		log.Error("token id missing in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing token claims"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]string{
		"jwt_id": tokenID,
	}))
}
