package voucher

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// ExtendExpiry pushes a live voucher's expiry out by input.Days and records
// an ExpiredDateExtension. An EXPIRED voucher whose new expiry lies in the
// future becomes ACTIVE again. USED vouchers cannot be extended.
func (s *Service) ExtendExpiry(ctx context.Context, input ExtendInput) (domain.ExpiredDateExtension, error) {
	if err := input.validate(s.cfg.MaxExtensionDays); err != nil {
		return domain.ExpiredDateExtension{}, err
	}

	now := s.now().UTC()
	var ext domain.ExpiredDateExtension
	var reactivated bool

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := s.vouchers.GetForUpdate(txCtx, input.VoucherID)
		if err != nil {
			return fmt.Errorf("get voucher: %w", err)
		}
		if v.IsDeleted() {
			return fmt.Errorf("voucher %d: %w", v.ID, domain.ErrNotFound)
		}
		if v.Status == domain.VoucherStatusUsed {
			return fmt.Errorf("voucher %d is %s: %w", v.ID, v.Status, domain.ErrInvalidState)
		}

		newExpiry := v.ExpiresAt.AddDate(0, 0, input.Days)

		ext, err = s.vouchers.CreateExtension(txCtx, domain.ExpiredDateExtension{
			VoucherID:         v.ID,
			PreviousExpiresAt: v.ExpiresAt,
			NewExpiresAt:      newExpiry,
			Reason:            strings.TrimSpace(input.Reason),
			CreatedBy:         input.Actor,
		})
		if err != nil {
			return fmt.Errorf("create extension: %w", err)
		}

		if err := s.vouchers.UpdateExpiry(txCtx, v.ID, newExpiry); err != nil {
			return fmt.Errorf("update expiry: %w", err)
		}

		fields := map[string]any{
			"expires_at":   map[string]any{"old": v.ExpiresAt.Format(time.RFC3339), "new": newExpiry.Format(time.RFC3339)},
			"extension_id": ext.ID,
		}
		if v.Status == domain.VoucherStatusExpired && newExpiry.After(now) {
			if err := s.vouchers.UpdateStatus(txCtx, v.ID, domain.VoucherStatusActive); err != nil {
				return fmt.Errorf("reactivate voucher: %w", err)
			}
			reactivated = true
			fields["status"] = map[string]any{"old": string(v.Status), "new": string(domain.VoucherStatusActive)}
		}

		_, err = s.audit.RecordUpdate(txCtx, domain.EntityKindVoucher, strconv.FormatInt(v.ID, 10), input.Actor,
			domain.NewFieldsPayload(fields))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ExpiredDateExtension{}, err
	}

	s.log.InfoContext(ctx, "voucher expiry extended",
		slog.Int64("voucher_id", ext.VoucherID),
		slog.Int("days", input.Days),
		slog.Time("expires_at", ext.NewExpiresAt),
		slog.Bool("reactivated", reactivated),
	)
	return ext, nil
}

// ExpireOverdue marks every live ACTIVE voucher past its expiry as EXPIRED.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	now := s.now().UTC()

	n, err := s.vouchers.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire overdue vouchers: %w", err)
	}

	s.log.InfoContext(ctx, "overdue vouchers expired",
		slog.Int64("expired", n),
		slog.Time("as_of", now),
	)
	return n, nil
}
