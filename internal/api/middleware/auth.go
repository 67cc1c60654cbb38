package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/NutriCare-BookingEngine/internal/api/handlers"
	"github.com/m04kA/NutriCare-BookingEngine/internal/auth"
)

const msgMissingToken = "требуется заголовок Authorization с bearer-токеном"

// Auth извлекает bearer-токен из заголовка Authorization и кладет его
// в контекст запроса. Запросы без токена отклоняются до хендлера.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := auth.WithToken(r.Context(), strings.TrimSpace(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
