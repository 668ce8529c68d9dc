package rest

import (
	"net/http"

	"github.com/heartmarshall/voucher-backend/internal/transport/middleware"
)

type instrumenter interface {
	Instrument(route string, h http.Handler) http.Handler
}

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Lifecycle  *LifecycleHandler
	Statistics *StatisticsHandler
	Access     *AccessHandler
	Vouchers   *VoucherHandler
	Bookings   *BookingHandler
	Metrics    http.Handler
}

// NewRouter registers all routes. Everything under /admin requires an admin
// caller; probes and /metrics are public.
func NewRouter(h Handlers, inst instrumenter) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.AdminOnly()

	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, inst.Instrument(pattern, fn))
	}
	handleAdmin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, inst.Instrument(pattern, admin(fn)))
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	handleAdmin("DELETE /admin/entities/{kind}/{id}", h.Lifecycle.SoftDelete)
	handleAdmin("GET /admin/audit-logs", h.Lifecycle.ListAuditLogs)
	handleAdmin("GET /admin/audit-logs/{id}", h.Lifecycle.GetAuditLog)
	handleAdmin("POST /admin/audit-logs/{id}/restore", h.Lifecycle.Restore)

	handleAdmin("GET /admin/statistics/consumption", h.Statistics.Consumption)
	handleAdmin("GET /admin/statistics/package-bookings", h.Statistics.PackageBookings)
	handleAdmin("GET /admin/statistics/package-spend", h.Statistics.PackageSpend)

	handleAdmin("POST /admin/roles", h.Access.CreateRole)
	handleAdmin("GET /admin/roles/{id}/claims", h.Access.ListClaims)
	handleAdmin("POST /admin/roles/{id}/claims", h.Access.AddClaim)

	handleAdmin("POST /admin/vouchers", h.Vouchers.Issue)
	handleAdmin("GET /admin/vouchers/{id}", h.Vouchers.Get)
	handleAdmin("POST /admin/vouchers/{id}/extensions", h.Vouchers.Extend)

	handleAdmin("POST /admin/bookings", h.Bookings.Create)
	handleAdmin("POST /admin/bookings/{id}/confirm", h.Bookings.Confirm)
	handleAdmin("POST /admin/bookings/{id}/cancel", h.Bookings.Cancel)

	return mux
}
