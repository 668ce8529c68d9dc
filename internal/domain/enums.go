package domain

// EntityKind tags the type of a tracked entity in audit records.
type EntityKind string

const (
	EntityKindCustomer             EntityKind = "Customer"
	EntityKindUser                 EntityKind = "User"
	EntityKindRole                 EntityKind = "Role"
	EntityKindRoleClaim            EntityKind = "RoleClaim"
	EntityKindService              EntityKind = "Service"
	EntityKindServicePackage       EntityKind = "ServicePackage"
	EntityKindVoucherType          EntityKind = "VoucherType"
	EntityKindVoucher              EntityKind = "Voucher"
	EntityKindBooking              EntityKind = "Booking"
	EntityKindExpiredDateExtension EntityKind = "ExpiredDateExtension"
)

// EntityKinds lists every tracked kind in a stable order.
var EntityKinds = []EntityKind{
	EntityKindCustomer,
	EntityKindUser,
	EntityKindRole,
	EntityKindRoleClaim,
	EntityKindService,
	EntityKindServicePackage,
	EntityKindVoucherType,
	EntityKindVoucher,
	EntityKindBooking,
	EntityKindExpiredDateExtension,
}

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindCustomer, EntityKindUser, EntityKindRole, EntityKindRoleClaim,
		EntityKindService, EntityKindServicePackage, EntityKindVoucherType,
		EntityKindVoucher, EntityKindBooking, EntityKindExpiredDateExtension:
		return true
	}
	return false
}

// KeyType returns the identifier type used by the kind's primary key.
func (k EntityKind) KeyType() KeyType {
	switch k {
	case EntityKindCustomer, EntityKindUser:
		return KeyTypeUUID
	}
	return KeyTypeInt
}

// KeyType is the type of an entity primary key.
type KeyType string

const (
	KeyTypeInt  KeyType = "INT"
	KeyTypeUUID KeyType = "UUID"
)

// AuditKind is the kind of transition an audit record describes.
type AuditKind string

const (
	AuditKindCreate AuditKind = "CREATE"
	AuditKindUpdate AuditKind = "UPDATE"
	AuditKindDelete AuditKind = "DELETE"
	AuditKindNone   AuditKind = "NONE"
)

func (k AuditKind) String() string { return string(k) }

func (k AuditKind) IsValid() bool {
	switch k {
	case AuditKindCreate, AuditKindUpdate, AuditKindDelete, AuditKindNone:
		return true
	}
	return false
}

// LifecycleState is the visible state of a soft-deletable entity.
type LifecycleState string

const (
	LifecycleActive  LifecycleState = "ACTIVE"
	LifecycleDeleted LifecycleState = "DELETED"
)

func (s LifecycleState) String() string { return string(s) }

// VoucherStatus is the redemption status of a voucher.
type VoucherStatus string

const (
	VoucherStatusActive  VoucherStatus = "ACTIVE"
	VoucherStatusUsed    VoucherStatus = "USED"
	VoucherStatusExpired VoucherStatus = "EXPIRED"
)

func (s VoucherStatus) String() string { return string(s) }

func (s VoucherStatus) IsValid() bool {
	switch s {
	case VoucherStatusActive, VoucherStatusUsed, VoucherStatusExpired:
		return true
	}
	return false
}

// BookingStatus is the processing status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
