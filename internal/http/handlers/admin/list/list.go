// Package list реализует HTTP-обработчик административного списка
// аккаунтов с посчитанными днями подписки.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/access"
)

// Service описывает интерфейс административного списка аккаунтов.
type Service interface {
	ListAccounts(ctx context.Context) ([]access.AccountView, error)
}

// Handler управляет HTTP-запросами на список аккаунтов.
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
// @Summary Список аккаунтов
// @Description Возвращает все аккаунты с посчитанными на текущий момент днями и решением о доступе.
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Param X-Admin-PIN header string true "Административный PIN"
// @Success 200 {object} map[string]any "Список аккаунтов"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Нет административного доступа"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accounts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListAccounts(r.Context())
	if err != nil {
		log.Error("failed to list accounts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list accounts"))
		return
	}

	log.Info("list accounts", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"accounts":   res,
	}))
}
