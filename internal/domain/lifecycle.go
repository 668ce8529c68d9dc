package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Lifecycle is the soft-delete state shared by every soft-deletable entity.
// It is embedded by value; only the lifecycle repository writes the column
// behind it.
type Lifecycle struct {
	Deleted bool `db:"is_deleted" json:"-"`
}

// State returns ACTIVE or DELETED.
func (l Lifecycle) State() LifecycleState {
	if l.Deleted {
		return LifecycleDeleted
	}
	return LifecycleActive
}

func (l Lifecycle) IsDeleted() bool { return l.Deleted }

// EntityKey is a parsed primary key. Int keys use ID, UUID keys use UUID.
type EntityKey struct {
	Type KeyType
	ID   int64
	UUID uuid.UUID
}

// IntKey builds an EntityKey for a numeric primary key.
func IntKey(id int64) EntityKey {
	return EntityKey{Type: KeyTypeInt, ID: id}
}

// UUIDKey builds an EntityKey for a UUID primary key.
func UUIDKey(id uuid.UUID) EntityKey {
	return EntityKey{Type: KeyTypeUUID, UUID: id}
}

// Value returns the key in the form the database driver expects.
func (k EntityKey) Value() any {
	if k.Type == KeyTypeUUID {
		return k.UUID
	}
	return k.ID
}

func (k EntityKey) String() string {
	if k.Type == KeyTypeUUID {
		return k.UUID.String()
	}
	return strconv.FormatInt(k.ID, 10)
}

// ParseEntityKey parses the string form of a primary key according to the
// kind's key type. Numeric keys must be positive.
func ParseEntityKey(kind EntityKind, raw string) (EntityKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return EntityKey{}, fmt.Errorf("empty %s key", kind)
	}

	switch kind.KeyType() {
	case KeyTypeUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return EntityKey{}, fmt.Errorf("parse %s key %q: %w", kind, raw, err)
		}
		if id == uuid.Nil {
			return EntityKey{}, fmt.Errorf("nil %s key", kind)
		}
		return UUIDKey(id), nil
	default:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return EntityKey{}, fmt.Errorf("parse %s key %q: %w", kind, raw, err)
		}
		if id <= 0 {
			return EntityKey{}, fmt.Errorf("%s key must be positive, got %d", kind, id)
		}
		return IntKey(id), nil
	}
}
