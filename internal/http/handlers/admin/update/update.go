// Package update реализует HTTP-обработчик административного
// редактирования аккаунта: профиль, статус и оставшиеся дни подписки.
package update

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

// Request — входные данные административного редактирования.
// DaysRemaining конвертируется в абсолютный срок подписки при записи.
type Request struct {
	ShopName      string `json:"shop_name" validate:"required,min=1"`
	Phone         string `json:"phone,omitempty"`
	Status        string `json:"status" validate:"required"`
	DaysRemaining int    `json:"days_remaining" validate:"gte=0"`
}

// Service описывает интерфейс административного редактирования аккаунта.
type Service interface {
	UpdateDetails(ctx context.Context, uid, shopName, phone string,
		status models.SubscriptionStatus, daysRemaining int) error
}

// Handler управляет HTTP-запросами на редактирование аккаунта.
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
// @Summary Отредактировать аккаунт
// @Description Обновляет профиль и подписку аккаунта. Введенные дни конвертируются в срок подписки, сами дни не хранятся.
// @Tags Admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param X-Admin-PIN header string true "Административный PIN"
// @Param uid path string true "UID аккаунта"
// @Param request body Request true "Новые данные аккаунта"
// @Success 200 {object} map[string]any "Аккаунт обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Нет административного доступа"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accounts/{uid} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.update"
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

	if err := h.service.UpdateDetails(r.Context(), uid, req.ShopName, req.Phone, status, req.DaysRemaining); err != nil {
		log.Error("failed to update account details", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update account"))
		return
	}

	log.Info("account details updated", slog.String("account_uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"account_uid": uid,
	}))
}
