package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	msgMissingToken = "Missing authorization token"
	msgInvalidToken = "Invalid or expired session"
)

type contextKey string

const adminSessionKey contextKey = "adminSession"

// Authenticator проверяет токен и возвращает серверную сессию
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.AdminSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с действующим Bearer токеном
// Сессия кладется в контекст запроса, см. GetSession
func AdminAuth(auth Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// GetSession админская сессия текущего запроса
func GetSession(ctx context.Context) (*domain.AdminSession, bool) {
	session, ok := ctx.Value(adminSessionKey).(*domain.AdminSession)
	return session, ok && session != nil
}

// WithSession кладет сессию в контекст, обратное GetSession
func WithSession(ctx context.Context, session *domain.AdminSession) context.Context {
	return context.WithValue(ctx, adminSessionKey, session)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
