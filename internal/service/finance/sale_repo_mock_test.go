package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ saleRepo = &saleRepoMock{}

type saleRepoMock struct {
	ListFunc     func(ctx context.Context) ([]domain.Sale, error)
	ListPageFunc func(ctx context.Context, limit int, cursor string) (domain.Page[domain.Sale], error)
	CreateFunc   func(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
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
			S   *domain.Sale
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList     sync.RWMutex
	lockListPage sync.RWMutex
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
}

func (mock *saleRepoMock) List(ctx context.Context) ([]domain.Sale, error) {
	if mock.ListFunc == nil {
		panic("saleRepoMock.ListFunc: method is nil but saleRepo.List was just called")
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

func (mock *saleRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *saleRepoMock) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Sale], error) {
	if mock.ListPageFunc == nil {
		panic("saleRepoMock.ListPageFunc: method is nil but saleRepo.ListPage was just called")
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

func (mock *saleRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Cursor string
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *saleRepoMock) Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error) {
	if mock.CreateFunc == nil {
		panic("saleRepoMock.CreateFunc: method is nil but saleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Sale
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *saleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Sale
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *saleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("saleRepoMock.DeleteFunc: method is nil but saleRepo.Delete was just called")
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

func (mock *saleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
