package access

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// CreateRole creates a role and appends its CREATE audit record.
func (s *Service) CreateRole(ctx context.Context, input CreateRoleInput) (domain.Role, error) {
	if err := input.Validate(); err != nil {
		return domain.Role{}, err
	}
	name := strings.TrimSpace(input.Name)

	var role domain.Role
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		role, err = s.roles.Create(txCtx, name)
		if err != nil {
			return fmt.Errorf("create role: %w", err)
		}

		_, err = s.audit.RecordCreate(txCtx, domain.EntityKindRole, strconv.FormatInt(role.ID, 10), input.Actor,
			domain.NewFieldsPayload(map[string]any{"name": name}))
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Role{}, err
	}

	s.log.InfoContext(ctx, "role created",
		slog.Int64("role_id", role.ID),
		slog.String("name", name),
	)
	return role, nil
}
