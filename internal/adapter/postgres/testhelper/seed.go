package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCustomer inserts an active customer.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool) domain.Customer {
	t.Helper()

	suffix := uniqueSuffix()
	c := domain.Customer{
		ID:        uuid.New(),
		FullName:  "Customer " + suffix,
		Email:     "customer-" + suffix + "@example.com",
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO customers (id, full_name, email, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.FullName, c.Email, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomer: %v", err)
	}
	return c
}

// SeedRole inserts an active role.
func SeedRole(t *testing.T, pool *pgxpool.Pool) domain.Role {
	t.Helper()

	r := domain.Role{Name: "role-" + uniqueSuffix(), CreatedAt: now()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO roles (name, created_at) VALUES ($1, $2) RETURNING id`,
		r.Name, r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}
	return r
}

// SeedClaim inserts a claim on the given role.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, roleID int64, claimType, claimValue string) domain.RoleClaim {
	t.Helper()

	c := domain.RoleClaim{RoleID: roleID, ClaimType: claimType, ClaimValue: claimValue}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO role_claims (role_id, claim_type, claim_value) VALUES ($1, $2, $3) RETURNING id`,
		c.RoleID, c.ClaimType, c.ClaimValue,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}
	return c
}

// SeedUser inserts an active staff user, optionally assigned to a role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, roleID *int64) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:        uuid.New(),
		Email:     "staff-" + suffix + "@example.com",
		FullName:  "Staff " + suffix,
		RoleID:    roleID,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, full_name, role_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.FullName, u.RoleID, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedService inserts an active service.
func SeedService(t *testing.T, pool *pgxpool.Pool) domain.Service {
	t.Helper()

	s := domain.Service{Name: "service-" + uniqueSuffix(), CreatedAt: now()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO services (name, created_at) VALUES ($1, $2) RETURNING id`,
		s.Name, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedService: %v", err)
	}
	return s
}

// SeedPackage inserts an active service package with the given price.
func SeedPackage(t *testing.T, pool *pgxpool.Pool, serviceID int64, price string) domain.ServicePackage {
	t.Helper()

	p := domain.ServicePackage{
		ServiceID: serviceID,
		Name:      "package-" + uniqueSuffix(),
		Price:     decimal.RequireFromString(price),
		CreatedAt: now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO service_packages (service_id, name, price, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.ServiceID, p.Name, p.Price, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPackage: %v", err)
	}
	return p
}

// SeedVoucherType inserts an active voucher type for a package.
func SeedVoucherType(t *testing.T, pool *pgxpool.Pool, packageID int64) domain.VoucherType {
	t.Helper()

	vt := domain.VoucherType{
		ServicePackageID: packageID,
		Name:             "voucher-type-" + uniqueSuffix(),
		ValidityDays:     90,
		CreatedAt:        now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO voucher_types (service_package_id, name, validity_days, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		vt.ServicePackageID, vt.Name, vt.ValidityDays, vt.CreatedAt,
	).Scan(&vt.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVoucherType: %v", err)
	}
	return vt
}

// SeedVoucher inserts a voucher with the given status and expiry.
func SeedVoucher(t *testing.T, pool *pgxpool.Pool, typeID int64, customerID uuid.UUID, status domain.VoucherStatus, expiresAt time.Time) domain.Voucher {
	t.Helper()

	v := domain.Voucher{
		VoucherTypeID: typeID,
		CustomerID:    customerID,
		Code:          "V-" + uniqueSuffix(),
		Status:        status,
		ExpiresAt:     expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt:     now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO vouchers (voucher_type_id, customer_id, code, status, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		v.VoucherTypeID, v.CustomerID, v.Code, string(v.Status), v.ExpiresAt, v.CreatedAt,
	).Scan(&v.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVoucher: %v", err)
	}
	return v
}

// SeedBooking inserts a booking with the given status, price and date.
func SeedBooking(t *testing.T, pool *pgxpool.Pool, customerID uuid.UUID, packageID int64, status domain.BookingStatus, price string, bookedAt time.Time) domain.Booking {
	t.Helper()

	b := domain.Booking{
		CustomerID:       customerID,
		ServicePackageID: packageID,
		Status:           status,
		Price:            decimal.RequireFromString(price),
		BookedAt:         bookedAt.UTC().Truncate(time.Microsecond),
		CreatedAt:        now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO bookings (customer_id, service_package_id, status, price, booked_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		b.CustomerID, b.ServicePackageID, string(b.Status), b.Price, b.BookedAt, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBooking: %v", err)
	}
	return b
}

// SeedExtension inserts an expiry extension for a voucher.
func SeedExtension(t *testing.T, pool *pgxpool.Pool, v domain.Voucher, days int) domain.ExpiredDateExtension {
	t.Helper()

	e := domain.ExpiredDateExtension{
		VoucherID:         v.ID,
		PreviousExpiresAt: v.ExpiresAt,
		NewExpiresAt:      v.ExpiresAt.AddDate(0, 0, days),
		Reason:            "seed",
		CreatedAt:         now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO expired_date_extensions (voucher_id, previous_expires_at, new_expires_at, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		e.VoucherID, e.PreviousExpiresAt, e.NewExpiresAt, e.Reason, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedExtension: %v", err)
	}
	return e
}

// SeedCatalog inserts a service, one package and one voucher type.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool, price string) (domain.Service, domain.ServicePackage, domain.VoucherType) {
	t.Helper()

	svc := SeedService(t, pool)
	pkg := SeedPackage(t, pool, svc.ID, price)
	vt := SeedVoucherType(t, pool, pkg.ID)
	return svc, pkg, vt
}

// IsDeleted reads the is_deleted column of a row.
func IsDeleted(t *testing.T, pool *pgxpool.Pool, table string, id any) bool {
	t.Helper()

	var deleted bool
	err := pool.QueryRow(context.Background(),
		`SELECT is_deleted FROM `+table+` WHERE id = $1`, id,
	).Scan(&deleted)
	if err != nil {
		t.Fatalf("testhelper: IsDeleted %s %v: %v", table, id, err)
	}
	return deleted
}

// CountAuditRecords counts audit rows for one entity.
func CountAuditRecords(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind, primaryKey string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_logs WHERE entity_kind = $1 AND primary_key = $2`,
		string(kind), primaryKey,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAuditRecords: %v", err)
	}
	return n
}
