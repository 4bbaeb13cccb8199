// Package lookup реализует HTTP-обработчик поиска повторного покупателя
// по номеру телефона.
package lookup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/customers"
)

// Service описывает интерфейс бизнес-логики поиска покупателя.
type Service interface {
	LookupCustomer(ctx context.Context, accountUID, phoneInput string) (*customers.Match, error)
}

// Handler управляет HTTP-запросами на поиск покупателя.
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
// @Summary Найти повторного покупателя
// @Description Ищет покупателя по номеру телефона среди прошлых заказов. Возвращает null, пока введено 6 цифр или меньше.
// @Tags Customers
// @Security BearerAuth
// @Produce  json
// @Param phone query string true "Номер телефона в свободной форме"
// @Success 200 {object} map[string]any "Данные покупателя или null"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при поиске"
// @Router /customers/lookup [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.lookup"
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

	match, err := h.service.LookupCustomer(r.Context(), accountUID, r.URL.Query().Get("phone"))
	if err != nil {
		log.Error("failed to lookup customer", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to lookup customer"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"match": match,
	}))
}
