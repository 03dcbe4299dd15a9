package bearer

import (
	"context"
	"net/http"
	"strings"

	commonhttp "github.com/AlibekovAA/feedboard/backend/internal/common/http"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	"github.com/AlibekovAA/feedboard/backend/internal/observability/metrics"
	"github.com/AlibekovAA/feedboard/backend/internal/user/domain"
)

// TokenResolver looks up an opaque bearer token. The token store is the sole
// authority for whether a request is authenticated.
type TokenResolver interface {
	Resolve(token string) (domain.User, bool)
}

type contextKey string

const userKey contextKey = "auth_user"

// Middleware gates protected routes. It extracts the bearer token, resolves
// it and attaches the user to the request context; any failure short-circuits
// with 401 before the wrapped handler runs.
func Middleware(resolver TokenResolver, log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
				log.Warnf("auth failed path=%s: missing or invalid authorization header", r.URL.Path)
				metrics.TokenResolutionsTotal.WithLabelValues("missing_header").Inc()
				commonhttp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(raw, "Bearer ")
			user, ok := resolver.Resolve(token)
			if !ok {
				log.Warnf("auth failed path=%s: unknown token", r.URL.Path)
				metrics.TokenResolutionsTotal.WithLabelValues("unknown_token").Inc()
				commonhttp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}
