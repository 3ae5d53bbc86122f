package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/padelcore/PCM-ScheduleService/internal/api/handlers"
)

type contextKey string

// UserIDKey ключ контекста с ID администратора из заголовка X-User-ID
const UserIDKey contextKey = "userID"

// Auth проверяет заголовок X-User-ID и кладет ID администратора в контекст.
// Запросы без валидного заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-User-ID")
		if header == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "X-User-ID header is required")
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "X-User-ID header must be a positive integer")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID администратора из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
