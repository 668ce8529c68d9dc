package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use in REST handlers; AdminOnly is the HTTP middleware form.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects anonymous requests with 401 and non-admin callers with 403.
func AdminOnly() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch err := RequireAdmin(r.Context()); err {
			case nil:
				next.ServeHTTP(w, r)
			case domain.ErrUnauthorized:
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			default:
				writeError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
			}
		})
	}
}
