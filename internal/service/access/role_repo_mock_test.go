package access

import (
	"context"
	"sync"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

var _ roleRepo = &roleRepoMock{}

type roleRepoMock struct {
	CreateFunc      func(ctx context.Context, name string) (domain.Role, error)
	GetByIDFunc     func(ctx context.Context, id int64) (domain.Role, error)
	LockFunc        func(ctx context.Context, id int64) (domain.Role, error)
	ListClaimsFunc  func(ctx context.Context, roleID int64) ([]domain.RoleClaim, error)
	CreateClaimFunc func(ctx context.Context, claim domain.RoleClaim) (domain.RoleClaim, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Name string
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		Lock []struct {
			Ctx context.Context
			Id  int64
		}
		ListClaims []struct {
			Ctx    context.Context
			RoleID int64
		}
		CreateClaim []struct {
			Ctx   context.Context
			Claim domain.RoleClaim
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockLock        sync.RWMutex
	lockListClaims  sync.RWMutex
	lockCreateClaim sync.RWMutex
}

func (mock *roleRepoMock) Create(ctx context.Context, name string) (domain.Role, error) {
	if mock.CreateFunc == nil {
		panic("roleRepoMock.CreateFunc: method is nil but roleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *roleRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *roleRepoMock) GetByID(ctx context.Context, id int64) (domain.Role, error) {
	if mock.GetByIDFunc == nil {
		panic("roleRepoMock.GetByIDFunc: method is nil but roleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *roleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *roleRepoMock) Lock(ctx context.Context, id int64) (domain.Role, error) {
	if mock.LockFunc == nil {
		panic("roleRepoMock.LockFunc: method is nil but roleRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, id)
}

func (mock *roleRepoMock) LockCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *roleRepoMock) ListClaims(ctx context.Context, roleID int64) ([]domain.RoleClaim, error) {
	if mock.ListClaimsFunc == nil {
		panic("roleRepoMock.ListClaimsFunc: method is nil but roleRepo.ListClaims was just called")
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

func (mock *roleRepoMock) ListClaimsCalls() []struct {
	Ctx    context.Context
	RoleID int64
} {
	mock.lockListClaims.RLock()
	calls := mock.calls.ListClaims
	mock.lockListClaims.RUnlock()
	return calls
}

func (mock *roleRepoMock) CreateClaim(ctx context.Context, claim domain.RoleClaim) (domain.RoleClaim, error) {
	if mock.CreateClaimFunc == nil {
		panic("roleRepoMock.CreateClaimFunc: method is nil but roleRepo.CreateClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Claim domain.RoleClaim
	}{
		Ctx:   ctx,
		Claim: claim,
	}
	mock.lockCreateClaim.Lock()
	mock.calls.CreateClaim = append(mock.calls.CreateClaim, callInfo)
	mock.lockCreateClaim.Unlock()
	return mock.CreateClaimFunc(ctx, claim)
}

func (mock *roleRepoMock) CreateClaimCalls() []struct {
	Ctx   context.Context
	Claim domain.RoleClaim
} {
	mock.lockCreateClaim.RLock()
	calls := mock.calls.CreateClaim
	mock.lockCreateClaim.RUnlock()
	return calls
}
