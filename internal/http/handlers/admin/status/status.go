// Package status реализует HTTP-обработчик административной смены
// статуса подписки аккаунта.
package status

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Request — входные данные для смены статуса
type Request struct {
	Status string `json:"status" validate:"required"`
}

// Service описывает интерфейс административной смены статуса.
type Service interface {
	SetStatus(ctx context.Context, uid string, status models.SubscriptionStatus) error
}

// Handler управляет HTTP-запросами на смену статуса подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить статус подписки
// @Description Переводит подписку аккаунта в новый статус. Переход в expired сдвигает срок подписки в прошлое.
// @Tags Admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param X-Admin-PIN header string true "Административный PIN"
// @Param uid path string true "UID аккаунта"
// @Param request body Request true "Новый статус подписки"
// @Success 200 {object} map[string]any "Статус изменен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Нет административного доступа"
// @Failure 422 {object} response.ErrorResponse "Неизвестный статус"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accounts/{uid}/status [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	status, err := models.ParseSubscriptionStatus(req.Status)
	if err != nil {
		log.Error("unknown subscription status", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	if err := h.service.SetStatus(r.Context(), uid, status); err != nil {
		log.Error("failed to set status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not set status"))
		return
	}

	log.Info("subscription status set",
		slog.String("account_uid", uid), slog.String("status", string(status)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"account_uid": uid,
		"status":      status,
	}))
}
