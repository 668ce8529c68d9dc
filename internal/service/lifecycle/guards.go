package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// guardFunc returns a non-empty reason when the entity must not be deleted.
type guardFunc func(ctx context.Context, key domain.EntityKey) (string, error)

func (s *Service) buildGuards(g Guards) map[domain.EntityKind]guardFunc {
	return map[domain.EntityKind]guardFunc{
		domain.EntityKindVoucherType: func(ctx context.Context, key domain.EntityKey) (string, error) {
			n, err := g.Vouchers.CountActiveByType(ctx, key.ID, s.now())
			return blockedBy(n, err, "active vouchers have not expired")
		},
		domain.EntityKindServicePackage: func(ctx context.Context, key domain.EntityKey) (string, error) {
			n, err := g.Catalog.CountLiveVoucherTypesByPackage(ctx, key.ID)
			return blockedBy(n, err, "voucher types still reference the package")
		},
		domain.EntityKindService: func(ctx context.Context, key domain.EntityKey) (string, error) {
			n, err := g.Catalog.CountLivePackagesByService(ctx, key.ID)
			return blockedBy(n, err, "service packages still reference the service")
		},
		domain.EntityKindRole: func(ctx context.Context, key domain.EntityKey) (string, error) {
			n, err := g.Users.CountLiveByRole(ctx, key.ID)
			return blockedBy(n, err, "users are still assigned to the role")
		},
		domain.EntityKindCustomer: func(ctx context.Context, key domain.EntityKey) (string, error) {
			n, err := g.Bookings.CountPendingByCustomer(ctx, key.UUID)
			return blockedBy(n, err, "customer has pending bookings")
		},
	}
}

func blockedBy(n int, err error, what string) (string, error) {
	if err != nil {
		return "", err
	}
	if n > 0 {
		return fmt.Sprintf("%d %s", n, what), nil
	}
	return "", nil
}
