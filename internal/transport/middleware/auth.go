package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/msaemrow/anglers-index-api/internal/auth"
	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (ctxutil.Principal, error)
}

// Auth attaches the bearer token's principal to the request context.
// Requests without a token pass through anonymously; a present but invalid
// token is rejected so a bad credential never silently downgrades to
// anonymous access.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			principal, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w, err.Error())
				return
			}

			ctx := ctxutil.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests whose context carries no principal.
// Must run after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.PrincipalFromCtx(r.Context()); !ok {
			unauthorized(w, auth.ErrTokenMissing.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason})
}
