// Package summary реализует HTTP-обработчик сводки дашборда:
// счетчики заказов, карточки выручки и топ товаров.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/analytics"
)

// Service описывает интерфейс бизнес-логики сводки дашборда.
type Service interface {
	Dashboard(ctx context.Context, accountUID string) (*analytics.DashboardReport, error)
}

// Handler управляет HTTP-запросами на сводку дашборда.
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
// @Summary Сводка дашборда
// @Description Возвращает счетчики заказов, карточки выручки с трендами и топ товаров по выручке.
// @Tags Analytics
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Сводка дашборда"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете"
// @Router /analytics/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.summary"
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

	report, err := h.service.Dashboard(r.Context(), accountUID)
	if err != nil {
		log.Error("failed to build dashboard report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build dashboard report"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(report))
}
