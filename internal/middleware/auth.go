package middleware

import (
	"arena_backend/pkg/resp"
	"arena_backend/pkg/token"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Auth проверяет Bearer токен и кладёт адрес игрока в контекст
func Auth(secretKey []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AddressFromContext адрес игрока из проверенного токена
func AddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(ctxKey{}).(string)
	return address, ok && address != ""
}

// WithAddress кладёт адрес в контекст, нужен тестам и внутренним вызовам
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ctxKey{}, address)
}
