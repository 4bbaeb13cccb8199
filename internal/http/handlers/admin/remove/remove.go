// Package remove реализует HTTP-обработчик административного удаления
// аккаунта вместе со всеми его заказами.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
)

// Service описывает интерфейс административного удаления аккаунта.
type Service interface {
	Remove(ctx context.Context, uid string) error
}

// Handler управляет HTTP-запросами на удаление аккаунтов.
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
// @Summary Удалить аккаунт
// @Description Безвозвратно удаляет аккаунт и все его заказы.
// @Tags Admin
// @Security BearerAuth
// @Produce  json
// @Param X-Admin-PIN header string true "Административный PIN"
// @Param uid path string true "UID аккаунта"
// @Success 200 {object} map[string]any "Аккаунт удален"
// @Failure 403 {object} response.ErrorResponse "Нет административного доступа"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/accounts/{uid} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")

	if err := h.service.Remove(r.Context(), uid); err != nil {
		log.Error("failed to remove account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove account"))
		return
	}

	log.Info("account removed", slog.String("account_uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed_uid": uid,
	}))
}
