// Package update реализует HTTP-обработчик редактирования профиля
// продавца владельцем аккаунта.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Service описывает интерфейс бизнес-логики редактирования профиля.
type Service interface {
	UpdateProfile(ctx context.Context, uid string, req models.DummyProfile) (*models.Account, error)
}

// Handler управляет HTTP-запросами на редактирование профиля.
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
// @Summary Обновить профиль продавца
// @Description Обновляет название магазина, телефон и адрес. Пустые поля не затирают существующие.
// @Tags Account
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyProfile true "Редактируемые поля профиля"
// @Success 200 {object} map[string]any "Обновленный профиль"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении"
// @Router /account [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProfile
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

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	account, err := h.service.UpdateProfile(r.Context(), accountUID, req)
	if err != nil {
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update profile"))
		return
	}

	log.Info("profile updated", slog.String("account_uid", accountUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"account": account,
	}))
}
