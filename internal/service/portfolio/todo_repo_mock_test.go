package portfolio

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	DeleteByDomainFunc func(ctx context.Context, domainID uuid.UUID) (int64, error)

	calls struct {
		DeleteByDomain []struct {
			Ctx      context.Context
			DomainID uuid.UUID
		}
	}
	lockDeleteByDomain sync.RWMutex
}

func (mock *todoRepoMock) DeleteByDomain(ctx context.Context, domainID uuid.UUID) (int64, error) {
	if mock.DeleteByDomainFunc == nil {
		panic("todoRepoMock.DeleteByDomainFunc: method is nil but todoRepo.DeleteByDomain was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DomainID uuid.UUID
	}{
		Ctx:      ctx,
		DomainID: domainID,
	}
	mock.lockDeleteByDomain.Lock()
	mock.calls.DeleteByDomain = append(mock.calls.DeleteByDomain, callInfo)
	mock.lockDeleteByDomain.Unlock()
	return mock.DeleteByDomainFunc(ctx, domainID)
}

func (mock *todoRepoMock) DeleteByDomainCalls() []struct {
	Ctx      context.Context
	DomainID uuid.UUID
} {
	mock.lockDeleteByDomain.RLock()
	calls := mock.calls.DeleteByDomain
	mock.lockDeleteByDomain.RUnlock()
	return calls
}
