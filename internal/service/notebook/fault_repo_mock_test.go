package notebook

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ faultRepo = &faultRepoMock{}

type faultRepoMock struct {
	ListFunc     func(ctx context.Context) ([]domain.Fault, error)
	ListPageFunc func(ctx context.Context, limit int, cursor string) (domain.Page[domain.Fault], error)
	CreateFunc   func(ctx context.Context, text string) (*domain.Fault, error)
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
			Ctx  context.Context
			Text string
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

func (mock *faultRepoMock) List(ctx context.Context) ([]domain.Fault, error) {
	if mock.ListFunc == nil {
		panic("faultRepoMock.ListFunc: method is nil but faultRepo.List was just called")
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

func (mock *faultRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *faultRepoMock) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Fault], error) {
	if mock.ListPageFunc == nil {
		panic("faultRepoMock.ListPageFunc: method is nil but faultRepo.ListPage was just called")
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

func (mock *faultRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Cursor string
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *faultRepoMock) Create(ctx context.Context, text string) (*domain.Fault, error) {
	if mock.CreateFunc == nil {
		panic("faultRepoMock.CreateFunc: method is nil but faultRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{
		Ctx:  ctx,
		Text: text,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, text)
}

func (mock *faultRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Text string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *faultRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("faultRepoMock.DeleteFunc: method is nil but faultRepo.Delete was just called")
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

func (mock *faultRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
