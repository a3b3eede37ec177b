package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/engagement-manager-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicRoute libera as rotas consumidas pelo site público (catálogo e
// checkout) e as rotas de autenticação, que não carregam token.
func publicRoute(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthcheck", "/v1/login":
		return true
	}

	if r.Method == http.MethodGet && r.URL.Path == "/v1/services" {
		return true
	}

	// Fluxo de checkout do site: criação de cobrança e consulta de status.
	if strings.HasPrefix(r.URL.Path, "/v1/payments/") || r.URL.Path == "/v1/payments" {
		return true
	}

	// Consulta pública de status de pedido do site.
	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/orders/") {
		return true
	}

	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
