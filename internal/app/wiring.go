package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/audit"
	bookingrepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/booking"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/customer"
	lifecyclerepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/lifecycle"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/role"
	userrepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/user"
	voucherrepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/voucher"
	"github.com/heartmarshall/voucher-backend/internal/auth"
	"github.com/heartmarshall/voucher-backend/internal/config"
	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/metrics"
	"github.com/heartmarshall/voucher-backend/internal/service/access"
	auditsvc "github.com/heartmarshall/voucher-backend/internal/service/audit"
	bookingsvc "github.com/heartmarshall/voucher-backend/internal/service/booking"
	"github.com/heartmarshall/voucher-backend/internal/service/lifecycle"
	"github.com/heartmarshall/voucher-backend/internal/service/statistics"
	vouchersvc "github.com/heartmarshall/voucher-backend/internal/service/voucher"
	"github.com/heartmarshall/voucher-backend/internal/transport/middleware"
	"github.com/heartmarshall/voucher-backend/internal/transport/rest"
)

// NewHandler builds repositories, services and the REST router on top of
// pool and wraps the router in the global middleware chain.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	auditRepo := auditrepo.New(pool)
	bookingRepo := bookingrepo.New(pool)
	catalogRepo := catalog.New(pool)
	customerRepo := customer.New(pool)
	entityRepo := lifecyclerepo.New(pool)
	roleRepo := role.New(pool)
	userRepo := userrepo.New(pool)
	voucherRepo := voucherrepo.New(pool)

	// Services.
	auditService := auditsvc.NewService(logger, auditRepo)

	lifecycleService := lifecycle.NewService(
		logger,
		lifecycle.Config{StrictRestore: cfg.Lifecycle.StrictRestore},
		txm,
		entityRepo,
		auditService,
		auditRepo,
		roleRepo,
		lifecycle.Guards{
			Vouchers: voucherRepo,
			Catalog:  catalogRepo,
			Users:    userRepo,
			Bookings: bookingRepo,
		},
		m,
	)

	statisticsService := statistics.NewService(
		logger,
		statistics.Config{
			CountedStatus: domain.BookingStatus(cfg.Statistics.CountedStatus),
			MaxRangeYears: cfg.Statistics.MaxRangeYears,
		},
		customerRepo,
		catalogRepo,
		bookingRepo,
	)

	accessService := access.NewService(logger, roleRepo, auditService, txm)

	voucherService := vouchersvc.NewService(
		logger,
		vouchersvc.Config{MaxExtensionDays: cfg.Vouchers.MaxExtensionDays},
		voucherRepo,
		customerRepo,
		catalogRepo,
		auditService,
		txm,
	)

	bookingService := bookingsvc.NewService(
		logger, bookingRepo, customerRepo, catalogRepo, voucherRepo, auditService, txm,
	)

	// Transport.
	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: pool.Ping}),
		Lifecycle:  rest.NewLifecycleHandler(lifecycleService, auditService, logger),
		Statistics: rest.NewStatisticsHandler(statisticsService, logger),
		Access:     rest.NewAccessHandler(accessService, logger),
		Vouchers:   rest.NewVoucherHandler(voucherService, logger),
		Bookings:   rest.NewBookingHandler(bookingService, logger),
		Metrics:    m.Handler(),
	}, m)

	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Limit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.When(cfg.RateLimit.Enabled, rateLimit),
		middleware.Auth(verifier, cfg.Auth.AdminRoleList()),
	)(router)
}
