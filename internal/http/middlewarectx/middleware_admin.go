package middlewarectx

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/salmansarfraz67/Order-Buddy/internal/http/response"
)

// AdminMiddleware пропускает только аккаунты с ролью admin, подтвердившие
// запрос заголовком X-Admin-PIN с настроенным кодом.
func AdminMiddleware(log *slog.Logger, adminPIN string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(Role).(string)
			if !ok || role != "admin" {
				log.Error("admin role required", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin role required"))
				return
			}

			pin := r.Header.Get("X-Admin-PIN")
			if subtle.ConstantTimeCompare([]byte(pin), []byte(adminPIN)) != 1 {
				log.Error("invalid admin pin")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid admin pin"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
