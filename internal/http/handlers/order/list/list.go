// Package list реализует HTTP-обработчик списка заказов
// с фильтрацией и сортировкой через query-параметры.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки заказов.
type Service interface {
	List(ctx context.Context, accountUID string, filter models.OrderFilter) ([]*models.Order, error)
}

// Handler управляет HTTP-запросами на список заказов.
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
// @Summary Список заказов
// @Description Возвращает заказы текущего продавца с учетом фильтров и сортировки.
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Param search query string false "Поиск по имени, товару, ID или телефону"
// @Param status query string false "Фильтр по статусу заказа"
// @Param from query string false "Начало диапазона дат (2006-01-02)"
// @Param to query string false "Конец диапазона дат (2006-01-02)"
// @Param sort query string false "Ключ сортировки: date-desc, date-asc, amount-desc, amount-asc"
// @Success 200 {object} map[string]any "Список заказов"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 422 {object} response.ErrorResponse "Некорректные параметры фильтра"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выборке"
// @Router /orders/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, err := parseFilter(r)
	if err != nil {
		log.Error("invalid filter parameters", sl.Err(err))
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

	res, err := h.service.List(r.Context(), accountUID, filter)
	if err != nil {
		if errors.Is(err, errs.ErrTransient) {
			log.Error("store unavailable", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("store temporarily unavailable, retry"))
			return
		}
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list"))
		return
	}

	log.Info("list orders", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"orders":     res,
	}))
}

// parseFilter собирает OrderFilter из query-параметров запроса.
// Неизвестный статус или ключ сортировки — ошибка, а не значение по умолчанию.
func parseFilter(r *http.Request) (models.OrderFilter, error) {
	var filter models.OrderFilter
	query := r.URL.Query()

	filter.SearchText = query.Get("search")

	if statusStr := query.Get("status"); statusStr != "" {
		status, err := models.ParseOrderStatus(statusStr)
		if err != nil {
			return models.OrderFilter{}, err
		}
		filter.Status = &status
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := day.Parse(fromStr)
		if err != nil {
			return models.OrderFilter{}, err
		}
		filter.StartDate = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, err := day.Parse(toStr)
		if err != nil {
			return models.OrderFilter{}, err
		}
		filter.EndDate = &to
	}

	sortKey, err := models.ParseSortKey(query.Get("sort"))
	if err != nil {
		return models.OrderFilter{}, err
	}
	filter.SortKey = sortKey

	return filter, nil
}
