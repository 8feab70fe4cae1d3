package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=auth.go -destination=auth_mocks_test.go -package=middleware_test

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*employees.Employee, error)
}

type AuthMiddlewareHandler struct {
	resolver     sessionResolver
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(resolver sessionResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		resolver: resolver,
		allowedPaths: map[string]bool{
			"/":               true,
			"/api/auth/login": true,
		},
	}
}

// AuthCheck resolves the bearer session token and stores the authenticated
// employee in the request context. Role checks happen in the handlers.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				return
			}

			if h.allowedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authToken := strings.TrimSpace(
				strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"),
			)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteError(w, "authorization required", http.StatusUnauthorized)
				return
			}

			employee, err := h.resolver.Resolve(r.Context(), authToken)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				pkg.WriteError(w, "invalid session", http.StatusUnauthorized)
				return
			}

			ctx := employees.ContextWithRequester(r.Context(), employee)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
