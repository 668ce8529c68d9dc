package voucher

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ auditWriter = &auditWriterMock{}

type auditWriterMock struct {
	RecordCreateFunc func(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)
	RecordUpdateFunc func(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error)

	calls struct {
		RecordCreate []struct {
			Ctx        context.Context
			Kind       domain.EntityKind
			PrimaryKey string
			Actor      *uuid.UUID
			Payload    *domain.AuditPayload
		}
		RecordUpdate []struct {
			Ctx        context.Context
			Kind       domain.EntityKind
			PrimaryKey string
			Actor      *uuid.UUID
			Payload    *domain.AuditPayload
		}
	}
	lockRecordCreate sync.RWMutex
	lockRecordUpdate sync.RWMutex
}

func (mock *auditWriterMock) RecordCreate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error) {
	if mock.RecordCreateFunc == nil {
		panic("auditWriterMock.RecordCreateFunc: method is nil but auditWriter.RecordCreate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Kind       domain.EntityKind
		PrimaryKey string
		Actor      *uuid.UUID
		Payload    *domain.AuditPayload
	}{
		Ctx:        ctx,
		Kind:       kind,
		PrimaryKey: primaryKey,
		Actor:      actor,
		Payload:    payload,
	}
	mock.lockRecordCreate.Lock()
	mock.calls.RecordCreate = append(mock.calls.RecordCreate, callInfo)
	mock.lockRecordCreate.Unlock()
	return mock.RecordCreateFunc(ctx, kind, primaryKey, actor, payload)
}

func (mock *auditWriterMock) RecordCreateCalls() []struct {
	Ctx        context.Context
	Kind       domain.EntityKind
	PrimaryKey string
	Actor      *uuid.UUID
	Payload    *domain.AuditPayload
} {
	mock.lockRecordCreate.RLock()
	calls := mock.calls.RecordCreate
	mock.lockRecordCreate.RUnlock()
	return calls
}

func (mock *auditWriterMock) RecordUpdate(ctx context.Context, kind domain.EntityKind, primaryKey string, actor *uuid.UUID, payload *domain.AuditPayload) (domain.AuditRecord, error) {
	if mock.RecordUpdateFunc == nil {
		panic("auditWriterMock.RecordUpdateFunc: method is nil but auditWriter.RecordUpdate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Kind       domain.EntityKind
		PrimaryKey string
		Actor      *uuid.UUID
		Payload    *domain.AuditPayload
	}{
		Ctx:        ctx,
		Kind:       kind,
		PrimaryKey: primaryKey,
		Actor:      actor,
		Payload:    payload,
	}
	mock.lockRecordUpdate.Lock()
	mock.calls.RecordUpdate = append(mock.calls.RecordUpdate, callInfo)
	mock.lockRecordUpdate.Unlock()
	return mock.RecordUpdateFunc(ctx, kind, primaryKey, actor, payload)
}

func (mock *auditWriterMock) RecordUpdateCalls() []struct {
	Ctx        context.Context
	Kind       domain.EntityKind
	PrimaryKey string
	Actor      *uuid.UUID
	Payload    *domain.AuditPayload
} {
	mock.lockRecordUpdate.RLock()
	calls := mock.calls.RecordUpdate
	mock.lockRecordUpdate.RUnlock()
	return calls
}
