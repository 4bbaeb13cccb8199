package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/sl"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
	"github.com/salmansarfraz67/Order-Buddy/internal/services/access"
)

// AccessService определяет интерфейс для проверки доступа аккаунта.
type AccessService interface {
	Check(ctx context.Context, uid string) (*models.Account, access.Decision, error)
}

// AccessGateMiddleware создает middleware, пересчитывающее решение о доступе
// на каждом запросе. Закрытый доступ возвращает 403 с количеством
// оставшихся дней, чтобы клиент мог показать экран продления.
func AccessGateMiddleware(log *slog.Logger, accessService AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountUID, ok := r.Context().Value(AccountUID).(string)
			if !ok || accountUID == "" {
				log.Error("account identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("account identification missing"))
				return
			}

			_, decision, err := accessService.Check(r.Context(), accountUID)
			if err != nil {
				log.Error("failed to check subscription access", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if decision.AccessDenied {
				log.Info("subscription access denied",
					slog.String("account_uid", accountUID),
					slog.Int("days_remaining", decision.DaysRemaining))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Response{
					Status: response.StatusError,
					Error:  "subscription expired, access denied",
					Data:   decision,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
