package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя,
	// проставляется API-шлюзом
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestIDKey
)

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя в контекст
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя, положенный Auth middleware
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
