// Package revenue реализует HTTP-обработчик отчета о выручке
// по временным корзинам выбранного периода.
package revenue

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

// Service описывает интерфейс бизнес-логики отчета о выручке.
type Service interface {
	Revenue(ctx context.Context, accountUID string, period analytics.Period) (*analytics.RevenueReport, error)
}

// Handler управляет HTTP-запросами на отчет о выручке.
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
// @Summary Отчет о выручке
// @Description Возвращает корзины выручки за период (daily, weekly, monthly) с трендом к предыдущему окну.
// @Tags Analytics
// @Security BearerAuth
// @Produce  json
// @Param period query string false "Период отчета, по умолчанию daily"
// @Success 200 {object} map[string]any "Отчет о выручке"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 422 {object} response.ErrorResponse "Неизвестный период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете"
// @Router /analytics/revenue [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.revenue"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		log.Error("unknown period", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	report, err := h.service.Revenue(r.Context(), accountUID, period)
	if err != nil {
		log.Error("failed to build revenue report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build revenue report"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(report))
}
