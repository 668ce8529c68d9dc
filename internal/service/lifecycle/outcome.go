package lifecycle

import (
	"errors"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

const (
	opSoftDelete = "soft_delete"
	opRestore    = "restore"
)

const (
	outcomeOK            = "ok"
	outcomeAlreadyActive = "already_active"
	outcomeNotFound      = "not_found"
	outcomeConflict      = "conflict"
	outcomeInvalidState  = "invalid_state"
	outcomeCorrupt       = "corrupt_record"
	outcomeUnknownKind   = "unknown_kind"
	outcomeInvalidInput  = "invalid_input"
	outcomeError         = "error"
)

// outcome classifies the result of an operation for metrics.
func outcome(err error, alreadyActive bool) string {
	switch {
	case err == nil && alreadyActive:
		return outcomeAlreadyActive
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrConflict):
		return outcomeConflict
	case errors.Is(err, domain.ErrInvalidState):
		return outcomeInvalidState
	case errors.Is(err, domain.ErrCorruptAuditRecord):
		return outcomeCorrupt
	case errors.Is(err, domain.ErrUnknownEntityKind):
		return outcomeUnknownKind
	case errors.Is(err, domain.ErrValidation):
		return outcomeInvalidInput
	default:
		return outcomeError
	}
}
