package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/pkg/ctxutil"
)

// Logger returns middleware that writes one access log line per request.
// 5xx responses log at error level and 4xx at warn. The caller resolved by
// Auth further down the chain is reported as user_id and role.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			c := &caller{}
			r = r.WithContext(context.WithValue(r.Context(), callerKey{}, c))

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if c.set {
				attrs = append(attrs,
					slog.String("user_id", c.userID.String()),
					slog.String("role", c.role),
				)
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// caller is filled in by Auth once the token is validated.
type caller struct {
	userID uuid.UUID
	role   string
	set    bool
}

type callerKey struct{}

func noteCaller(ctx context.Context, userID uuid.UUID, role string) {
	if c, ok := ctx.Value(callerKey{}).(*caller); ok {
		c.userID, c.role, c.set = userID, role, true
	}
}

// statusWriter records the status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
