package voucher

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// Issue creates an ACTIVE voucher of a live type for a live customer. The
// expiry is the type's validity period from now.
func (s *Service) Issue(ctx context.Context, input IssueInput) (domain.Voucher, error) {
	if err := input.Validate(); err != nil {
		return domain.Voucher{}, err
	}

	var v domain.Voucher
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customers.GetByID(txCtx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}
		if customer.IsDeleted() {
			return fmt.Errorf("customer %s: %w", input.CustomerID, domain.ErrNotFound)
		}

		vt, err := s.types.GetVoucherType(txCtx, input.VoucherTypeID)
		if err != nil {
			return fmt.Errorf("get voucher type: %w", err)
		}
		if vt.IsDeleted() {
			return fmt.Errorf("voucher_type %d: %w", vt.ID, domain.ErrNotFound)
		}

		v, err = s.vouchers.Create(txCtx, domain.Voucher{
			VoucherTypeID: vt.ID,
			CustomerID:    customer.ID,
			Code:          newCode(),
			Status:        domain.VoucherStatusActive,
			ExpiresAt:     s.now().UTC().AddDate(0, 0, vt.ValidityDays),
		})
		if err != nil {
			return fmt.Errorf("create voucher: %w", err)
		}

		_, err = s.audit.RecordCreate(txCtx, domain.EntityKindVoucher, strconv.FormatInt(v.ID, 10), input.Actor,
			domain.NewFieldsPayload(map[string]any{
				"code":            v.Code,
				"voucher_type_id": v.VoucherTypeID,
				"customer_id":     v.CustomerID.String(),
				"expires_at":      v.ExpiresAt.Format(time.RFC3339),
			}))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Voucher{}, err
	}

	s.log.InfoContext(ctx, "voucher issued",
		slog.Int64("voucher_id", v.ID),
		slog.String("customer_id", v.CustomerID.String()),
		slog.Time("expires_at", v.ExpiresAt),
	)
	return v, nil
}

// Get returns a live voucher with its extensions.
func (s *Service) Get(ctx context.Context, id int64) (domain.Voucher, []domain.ExpiredDateExtension, error) {
	v, err := s.vouchers.GetByID(ctx, id)
	if err != nil {
		return domain.Voucher{}, nil, fmt.Errorf("get voucher: %w", err)
	}
	if v.IsDeleted() {
		return domain.Voucher{}, nil, fmt.Errorf("voucher %d: %w", id, domain.ErrNotFound)
	}

	exts, err := s.vouchers.ListExtensions(ctx, id)
	if err != nil {
		return domain.Voucher{}, nil, fmt.Errorf("list extensions: %w", err)
	}
	if exts == nil {
		exts = []domain.ExpiredDateExtension{}
	}
	return v, exts, nil
}

func newCode() string {
	id := uuid.New()
	return "V-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12])
}
