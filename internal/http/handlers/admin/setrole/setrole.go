// Package setrole реализует HTTP-обработчик переназначения роли пользователя.
// Операция update-only: запись для неизвестного username не создаётся.
// Доступ ограничен административной ролью на уровне маршрутов.
package setrole

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/kmalakhov/auth-service/internal/http/response"
	"github.com/kmalakhov/auth-service/internal/lib/sl"
	services "github.com/kmalakhov/auth-service/internal/services/auth"
)

// Request — структура входных данных для переназначения роли.
type Request struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// Service описывает интерфейс бизнес-логики переназначения ролей.
type Service interface {
	SetRole(ctx context.Context, username, role string) error
}

// Handler обрабатывает запросы на переназначение роли.
type Handler struct {
	log         *slog.Logger
	authService Service
	validate    *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Переназначение роли пользователя
// @Description Меняет роль существующей записи. Только для роли Admin.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя пользователя и новая роль"
// @Security BearerAuth
// @Success 200 {object} response.Response "Роль переназначена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или неизвестный пользователь"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует или невалиден"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auths [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.setrole"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.authService.SetRole(r.Context(), req.Username, req.Role); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			log.Error("unknown username", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown username"))
			return
		}
		log.Error("failed to set role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("role reassigned",
		slog.String("username", req.Username),
		slog.String("role", req.Role))
	render.JSON(w, r, response.OK())
}
