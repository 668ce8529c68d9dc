// Command expire-vouchers marks ACTIVE vouchers whose expiry has passed as
// EXPIRED. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/customer"
	voucherrepo "github.com/heartmarshall/voucher-backend/internal/adapter/postgres/voucher"
	"github.com/heartmarshall/voucher-backend/internal/app"
	"github.com/heartmarshall/voucher-backend/internal/config"
	auditsvc "github.com/heartmarshall/voucher-backend/internal/service/audit"
	"github.com/heartmarshall/voucher-backend/internal/service/voucher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Vouchers.ExpireTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, "voucher-expire")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := voucher.NewService(
		logger,
		voucher.Config{MaxExtensionDays: cfg.Vouchers.MaxExtensionDays},
		voucherrepo.New(pool),
		customer.New(pool),
		catalog.New(pool),
		auditsvc.NewService(logger, audit.New(pool)),
		postgres.NewTxManager(pool),
	)

	expired, err := svc.ExpireOverdue(ctx)
	if err != nil {
		logger.Error("expire vouchers failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expire vouchers completed", slog.Int64("expired", expired))
}
