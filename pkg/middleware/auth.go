package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/laundro/app/models"
	"github.com/shashiranjanraj/laundro/pkg/auth"
	"github.com/shashiranjanraj/laundro/pkg/response"
)

// claimsKey is the unexported context key for the session claims.
type claimsKey struct{}

// SessionFromCtx returns the claims stored by Authenticated, or nil when
// the request carried no valid session.
func SessionFromCtx(ctx context.Context) *auth.Claims {
	if c, ok := ctx.Value(claimsKey{}).(*auth.Claims); ok {
		return c
	}
	return nil
}

// Authenticated rejects requests without a valid Bearer session token and
// stores the claims in the request context for handlers.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects sessions whose role is not ADMIN. Must run after
// Authenticated.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := SessionFromCtx(r.Context())
		if claims == nil {
			response.Unauthorized(w)
			return
		}
		if claims.Role != models.RoleAdmin {
			response.Forbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
