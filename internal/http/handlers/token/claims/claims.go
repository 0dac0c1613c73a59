// Package claims реализует HTTP-обработчик интроспекции доверенного токена:
// полный набор claims отдаётся как отображение claim-тип -> значение.
package claims

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/middlewarectx"
	"github.com/kmalakhov/auth-service/internal/http/response"
	"github.com/kmalakhov/auth-service/internal/lib/jwt"
)

// Handler обрабатывает запросы на чтение claims текущего токена.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Claims текущего токена
// @Description Возвращает полный набор claims доверенного токена.
// @Tags Token
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Router /claims [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.claims"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := r.Context().Value(middlewarectx.Claims).(*jwt.CustomClaims)
	if !ok {
		log.Error("claims missing in request context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing token claims"))
		return
	}

	render.JSON(w, r, response.OKWithData(claims.AsMap()))
}
