package finance

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	ListFunc     func(ctx context.Context) ([]domain.Transaction, error)
	ListPageFunc func(ctx context.Context, limit int, cursor string) (domain.Page[domain.Transaction], error)
	BalanceFunc  func(ctx context.Context) (decimal.Decimal, error)
	CreateFunc   func(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
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
		Balance []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Transaction
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList     sync.RWMutex
	lockListPage sync.RWMutex
	lockBalance  sync.RWMutex
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
}

func (mock *transactionRepoMock) List(ctx context.Context) ([]domain.Transaction, error) {
	if mock.ListFunc == nil {
		panic("transactionRepoMock.ListFunc: method is nil but transactionRepo.List was just called")
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

func (mock *transactionRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *transactionRepoMock) ListPage(ctx context.Context, limit int, cursor string) (domain.Page[domain.Transaction], error) {
	if mock.ListPageFunc == nil {
		panic("transactionRepoMock.ListPageFunc: method is nil but transactionRepo.ListPage was just called")
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

func (mock *transactionRepoMock) ListPageCalls() []struct {
	Ctx    context.Context
	Limit  int
	Cursor string
} {
	mock.lockListPage.RLock()
	calls := mock.calls.ListPage
	mock.lockListPage.RUnlock()
	return calls
}

func (mock *transactionRepoMock) Balance(ctx context.Context) (decimal.Decimal, error) {
	if mock.BalanceFunc == nil {
		panic("transactionRepoMock.BalanceFunc: method is nil but transactionRepo.Balance was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockBalance.Lock()
	mock.calls.Balance = append(mock.calls.Balance, callInfo)
	mock.lockBalance.Unlock()
	return mock.BalanceFunc(ctx)
}

func (mock *transactionRepoMock) BalanceCalls() []struct {
	Ctx context.Context
} {
	mock.lockBalance.RLock()
	calls := mock.calls.Balance
	mock.lockBalance.RUnlock()
	return calls
}

func (mock *transactionRepoMock) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if mock.CreateFunc == nil {
		panic("transactionRepoMock.CreateFunc: method is nil but transactionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Transaction
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *transactionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Transaction
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transactionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("transactionRepoMock.DeleteFunc: method is nil but transactionRepo.Delete was just called")
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

func (mock *transactionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
