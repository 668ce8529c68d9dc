package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// Create books a live package for a live customer. The booking takes the
// package's current price and starts PENDING. When a voucher is given it must
// belong to the customer, be redeemable now and be of a type for the same
// package; it is marked USED in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return domain.Booking{}, err
	}

	now := s.now().UTC()
	var b domain.Booking

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customers.GetByID(txCtx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}
		if customer.IsDeleted() {
			return fmt.Errorf("customer %s: %w", input.CustomerID, domain.ErrNotFound)
		}

		pkg, err := s.catalog.GetPackage(txCtx, input.ServicePackageID)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		if pkg.IsDeleted() {
			return fmt.Errorf("service_package %d: %w", pkg.ID, domain.ErrNotFound)
		}

		if input.VoucherID != nil {
			if err := s.redeem(txCtx, *input.VoucherID, customer, pkg); err != nil {
				return err
			}
		}

		b, err = s.bookings.Create(txCtx, domain.Booking{
			CustomerID:       customer.ID,
			ServicePackageID: pkg.ID,
			VoucherID:        input.VoucherID,
			Status:           domain.BookingStatusPending,
			Price:            pkg.Price,
			BookedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		fields := map[string]any{
			"customer_id":        b.CustomerID.String(),
			"service_package_id": b.ServicePackageID,
			"price":              b.Price.String(),
		}
		if b.VoucherID != nil {
			fields["voucher_id"] = *b.VoucherID
		}
		_, err = s.audit.RecordCreate(txCtx, domain.EntityKindBooking, strconv.FormatInt(b.ID, 10), input.Actor,
			domain.NewFieldsPayload(fields))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Booking{}, err
	}

	s.log.InfoContext(ctx, "booking created",
		slog.Int64("booking_id", b.ID),
		slog.String("customer_id", b.CustomerID.String()),
		slog.Int64("package_id", b.ServicePackageID),
		slog.Bool("with_voucher", b.VoucherID != nil),
	)
	return b, nil
}

func (s *Service) redeem(ctx context.Context, voucherID int64, customer domain.Customer, pkg domain.ServicePackage) error {
	v, err := s.vouchers.GetForUpdate(ctx, voucherID)
	if err != nil {
		return fmt.Errorf("get voucher: %w", err)
	}
	if v.IsDeleted() || v.CustomerID != customer.ID {
		return fmt.Errorf("voucher %d: %w", voucherID, domain.ErrNotFound)
	}
	if !v.IsRedeemable(s.now()) {
		return fmt.Errorf("voucher %d is %s, expires %s: %w", v.ID, v.Status, v.ExpiresAt.Format("2006-01-02"), domain.ErrInvalidState)
	}

	vt, err := s.catalog.GetVoucherType(ctx, v.VoucherTypeID)
	if err != nil {
		return fmt.Errorf("get voucher type: %w", err)
	}
	if vt.ServicePackageID != pkg.ID {
		return domain.NewValidationError("voucher_id", "voucher is not valid for this package")
	}

	if err := s.vouchers.UpdateStatus(ctx, v.ID, domain.VoucherStatusUsed); err != nil {
		return fmt.Errorf("redeem voucher: %w", err)
	}
	return nil
}
