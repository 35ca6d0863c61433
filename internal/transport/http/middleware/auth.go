package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vedran77/levellore/internal/session"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	TokenKey    contextKey = "token"
)

// Auth resolves the bearer token against the session registry and injects
// the username into the request context. The registry is the only place a
// token gets mapped to a user.
func Auth(sessions *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			username, ok := sessions.Resolve(token)
			if !ok {
				http.Error(w, `{"message":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUsername extracts the authenticated username from the request context.
func GetUsername(ctx context.Context) string {
	return ctx.Value(UsernameKey).(string)
}

// GetToken extracts the bearer token the request authenticated with.
func GetToken(ctx context.Context) string {
	return ctx.Value(TokenKey).(string)
}
