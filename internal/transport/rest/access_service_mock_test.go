package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
	"github.com/heartmarshall/voucher-backend/internal/service/access"
)

var _ accessService = &accessServiceMock{}

type accessServiceMock struct {
	CreateRoleFunc func(ctx context.Context, input access.CreateRoleInput) (domain.Role, error)
	AddClaimFunc   func(ctx context.Context, input access.AddClaimInput) (domain.RoleClaim, error)
	ListClaimsFunc func(ctx context.Context, roleID int64) ([]domain.RoleClaim, error)

	calls struct {
		CreateRole []struct {
			Ctx   context.Context
			Input access.CreateRoleInput
		}
		AddClaim []struct {
			Ctx   context.Context
			Input access.AddClaimInput
		}
		ListClaims []struct {
			Ctx    context.Context
			RoleID int64
		}
	}
	lockCreateRole sync.RWMutex
	lockAddClaim   sync.RWMutex
	lockListClaims sync.RWMutex
}

func (mock *accessServiceMock) CreateRole(ctx context.Context, input access.CreateRoleInput) (domain.Role, error) {
	if mock.CreateRoleFunc == nil {
		panic("accessServiceMock.CreateRoleFunc: method is nil but accessService.CreateRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input access.CreateRoleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateRole.Lock()
	mock.calls.CreateRole = append(mock.calls.CreateRole, callInfo)
	mock.lockCreateRole.Unlock()
	return mock.CreateRoleFunc(ctx, input)
}

func (mock *accessServiceMock) CreateRoleCalls() []struct {
	Ctx   context.Context
	Input access.CreateRoleInput
} {
	mock.lockCreateRole.RLock()
	calls := mock.calls.CreateRole
	mock.lockCreateRole.RUnlock()
	return calls
}

func (mock *accessServiceMock) AddClaim(ctx context.Context, input access.AddClaimInput) (domain.RoleClaim, error) {
	if mock.AddClaimFunc == nil {
		panic("accessServiceMock.AddClaimFunc: method is nil but accessService.AddClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input access.AddClaimInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddClaim.Lock()
	mock.calls.AddClaim = append(mock.calls.AddClaim, callInfo)
	mock.lockAddClaim.Unlock()
	return mock.AddClaimFunc(ctx, input)
}

func (mock *accessServiceMock) AddClaimCalls() []struct {
	Ctx   context.Context
	Input access.AddClaimInput
} {
	mock.lockAddClaim.RLock()
	calls := mock.calls.AddClaim
	mock.lockAddClaim.RUnlock()
	return calls
}

func (mock *accessServiceMock) ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error) {
	if mock.ListClaimsFunc == nil {
		panic("accessServiceMock.ListClaimsFunc: method is nil but accessService.ListClaims was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoleID int64
	}{
		Ctx:    ctx,
		RoleID: roleID,
	}
	mock.lockListClaims.Lock()
	mock.calls.ListClaims = append(mock.calls.ListClaims, callInfo)
	mock.lockListClaims.Unlock()
	return mock.ListClaimsFunc(ctx, roleID)
}

func (mock *accessServiceMock) ListClaimsCalls() []struct {
	Ctx    context.Context
	RoleID int64
} {
	mock.lockListClaims.RLock()
	calls := mock.calls.ListClaims
	mock.lockListClaims.RUnlock()
	return calls
}
