package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// TokenValidator интерфейс проверки JWT токена
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth возвращает middleware, который требует валидный bearer-токен
// и кладет его claims в контекст запроса
func Auth(tokens TokenValidator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				log.Warn("%s %s - missing Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing authorization token")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				log.Warn("%s %s - malformed Authorization header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "malformed authorization header")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext извлекает claims аутентифицированного пользователя.
// Возвращает false, если запрос не проходил через Auth middleware.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}
