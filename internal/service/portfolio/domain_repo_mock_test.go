package portfolio

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ domainRepo = &domainRepoMock{}

type domainRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Domain, error)
	ListFunc     func(ctx context.Context) ([]domain.Domain, error)
	ListPageFunc func(ctx context.Context, limit int, cursor string) (domain.Page[domain.Domain], error)
	CreateFunc   func(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, p domain.DomainUpdateParams) (*domain.Domain, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ListPage []struct {
			Ctx    context.Context
			Limit  int
			Cursor string
		}
		Create []struct {
			Ctx context.Context
			D   *domain.Domain
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.DomainUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockList     sync.RWMutex
	lockListPage sync.RWMutex
	lockCreate   sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
}

func (mock *domainRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Domain, error) {
	if mock.GetByIDFunc == nil {
		panic("domainRepoMock.GetByIDFunc: method is nil but domainRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *domainRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *domainRepoMock) List(ctx context.Context) ([]domain.Domain, error) {
	if mock.ListFunc == nil {
		panic("domainRepoMock.ListFunc: method is nil but domainRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *domainRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *domainRepoMock) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Domain], error) {
	if mock.ListPageFunc == nil {
		panic("domainRepoMock.ListPageFunc: method is nil but domainRepo.ListPage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Cursor string
	}{
		Ctx:    ctx,
		Limit:  limit,
		Cursor: cursor,
	}
	mock.lockListPage.Lock()
	mock.calls.ListPage = append(mock.calls.ListPage, callInfo)
	mock.lockListPage.Unlock()
	return mock.ListPageFunc(ctx, limit, cursor)
}

func (mock *domainRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Cursor string
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *domainRepoMock) Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	if mock.CreateFunc == nil {
		panic("domainRepoMock.CreateFunc: method is nil but domainRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Domain
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *domainRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Domain
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *domainRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.DomainUpdateParams) (*domain.Domain, error) {
	if mock.UpdateFunc == nil {
		panic("domainRepoMock.UpdateFunc: method is nil but domainRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.DomainUpdateParams
	}{
		Ctx: ctx,
		ID:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *domainRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.DomainUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *domainRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("domainRepoMock.DeleteFunc: method is nil but domainRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *domainRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
