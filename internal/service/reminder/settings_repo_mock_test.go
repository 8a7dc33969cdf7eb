package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc        func(ctx context.Context) (domain.Settings, error)
	SaveAPIKeyFunc func(ctx context.Context, key string) (domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		SaveAPIKey []struct {
			Ctx context.Context
			Key string
		}
	}
	lockGet        sync.RWMutex
	lockSaveAPIKey sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context) (domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) SaveAPIKey(ctx context.Context, key string) (domain.Settings, error) {
	if mock.SaveAPIKeyFunc == nil {
		panic("settingsRepoMock.SaveAPIKeyFunc: method is nil but settingsRepo.SaveAPIKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockSaveAPIKey.Lock()
	mock.calls.SaveAPIKey = append(mock.calls.SaveAPIKey, callInfo)
	mock.lockSaveAPIKey.Unlock()
	return mock.SaveAPIKeyFunc(ctx, key)
}

func (mock *settingsRepoMock) SaveAPIKeyCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockSaveAPIKey.RLock()
	calls := mock.calls.SaveAPIKey
	mock.lockSaveAPIKey.RUnlock()
	return calls
}
