// Package products реализует HTTP-обработчик списка названий товаров
// для автодополнения формы заказа.
package products

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики списка товаров.
type Service interface {
	Products(ctx context.Context, accountUID string) ([]string, error)
}

// Handler управляет HTTP-запросами на список товаров.
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
// @Summary Названия товаров продавца
// @Description Возвращает уникальные названия товаров из заказов для автодополнения.
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Список названий"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выборке"
// @Router /orders/products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.products"
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

	res, err := h.service.Products(r.Context(), accountUID)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"products": res,
	}))
}
