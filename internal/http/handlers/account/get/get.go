// Package get реализует HTTP-обработчик профиля продавца
// вместе с актуальным решением о доступе по подписке.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/access"
)

// Service описывает интерфейс проверки аккаунта и доступа.
type Service interface {
	Check(ctx context.Context, uid string) (*models.Account, access.Decision, error)
}

// Handler управляет HTTP-запросами на профиль продавца.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль продавца
// @Description Возвращает профиль текущего продавца и свежее решение о доступе с оставшимися днями.
// @Tags Account
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Профиль и решение о доступе"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /account [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	account, decision, err := h.service.Check(r.Context(), accountUID)
	if err != nil {
		log.Error("failed to read account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read account"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"account":  account,
		"decision": decision,
	}))
}
