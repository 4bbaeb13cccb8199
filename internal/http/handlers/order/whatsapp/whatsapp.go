// Package whatsapp реализует HTTP-обработчик, собирающий ссылку wa.me
// с готовым сообщением покупателю по выбранному шаблону.
package whatsapp

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/middlewarectx"
	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/access"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/orders"
)

// OrderService описывает интерфейс бизнес-логики заказов для сборки ссылки.
type OrderService interface {
	Get(ctx context.Context, accountUID, id string) (*models.Order, error)
	WhatsAppLink(order *models.Order, shopName string, template orders.MessageTemplate) (string, error)
}

// AccountService отдает профиль продавца для подписи сообщения.
type AccountService interface {
	Check(ctx context.Context, uid string) (*models.Account, access.Decision, error)
}

// Handler управляет HTTP-запросами на сборку ссылки WhatsApp.
type Handler struct {
	log      *slog.Logger
	orders   OrderService
	accounts AccountService
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, orderService OrderService, accountService AccountService) *Handler {
	return &Handler{
		log:      log,
		orders:   orderService,
		accounts: accountService,
	}
}

// ServeHTTP godoc
// @Summary Ссылка WhatsApp для заказа
// @Description Собирает ссылку wa.me с текстом сообщения по шаблону (received, payment, confirmed, shipped, delivered).
// @Tags Orders
// @Security BearerAuth
// @Produce  json
// @Param id path string true "ID заказа"
// @Param template query string true "Шаблон сообщения"
// @Success 200 {object} map[string]any "Ссылка wa.me"
// @Failure 401 {object} response.ErrorResponse "Продавец не авторизован"
// @Failure 404 {object} response.ErrorResponse "Заказ не найден"
// @Failure 422 {object} response.ErrorResponse "Неизвестный шаблон или неподходящий заказ"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /orders/{id}/whatsapp [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.whatsapp"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	template, err := orders.ParseMessageTemplate(r.URL.Query().Get("template"))
	if err != nil {
		log.Error("unknown message template", sl.Err(err))
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

	order, err := h.orders.Get(r.Context(), accountUID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error("order not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("order not found"))
			return
		}
		log.Error("failed to read order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read order"))
		return
	}

	account, _, err := h.accounts.Check(r.Context(), accountUID)
	if err != nil {
		log.Error("failed to read account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read account"))
		return
	}

	link, err := h.orders.WhatsAppLink(order, account.ShopName, template)
	if err != nil {
		if errs.IsValidation(err) {
			log.Error("cannot build whatsapp link", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to build whatsapp link", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build whatsapp link"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"link": link,
	}))
}
