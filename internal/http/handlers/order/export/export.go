// Package export реализует HTTP-обработчик выгрузки заказов в CSV.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выгрузки заказов.
type Service interface {
	ExportCSV(ctx context.Context, accountUID string, w io.Writer) error
}

// Handler управляет HTTP-запросами на выгрузку заказов.
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
// @Summary Выгрузить заказы в CSV
// @Description Возвращает все заказы текущего продавца одним CSV-файлом.
// @Tags Orders
// @Security BearerAuth
// @Produce  text/csv
// @Success 200 {string} string "CSV-файл с заказами"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выгрузке"
// @Router /orders/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.export"
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

	filename := fmt.Sprintf("orders_export_%s.csv", time.Now().Format(day.Format))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportCSV(r.Context(), accountUID, w); err != nil {
		// Заголовки уже могли уйти клиенту, статус менять поздно.
		log.Error("failed to export orders", sl.Err(err))
		return
	}
	log.Info("orders exported", slog.String("account_uid", accountUID))
}
