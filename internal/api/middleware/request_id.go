package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDKey ключ контекста с ID запроса
const RequestIDKey contextKey = "requestID"

// RequestIDHeader заголовок, через который ID запроса передается между сервисами
const RequestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу уникальный ID для трассировки логов.
// Если вызывающая сторона уже передала X-Request-ID, он сохраняется
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает ID запроса, положенный RequestID middleware
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
