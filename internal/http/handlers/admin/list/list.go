// Package list реализует HTTP-обработчик чтения полного списка записей
// о ролях. Доступ ограничен административной ролью на уровне маршрутов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/kmalakhov/auth-service/internal/http/response"
	"github.com/kmalakhov/auth-service/internal/lib/sl"
	"github.com/kmalakhov/auth-service/internal/models"
)

// Service описывает интерфейс бизнес-логики для чтения записей о ролях.
type Service interface {
	ListAuthRecords(ctx context.Context) ([]models.AuthRecord, error)
}

// Handler обрабатывает запросы на чтение списка ролей.
type Handler struct {
	log         *slog.Logger
	authService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
	}
}

// ServeHTTP godoc
// @Summary Список записей о ролях
// @Description Возвращает все записи о ролях. Только для роли Admin.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.AuthRecord
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auths [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	records, err := h.authService.ListAuthRecords(r.Context())
	if err != nil {
		log.Error("failed to list auth records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("auth records listed", slog.Int("count", len(records)))
	render.JSON(w, r, response.OKWithData(records))
}
