package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ domainRepo = &domainRepoMock{}

type domainRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Domain, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
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
