package notebook

import (
	"context"
	"sync"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc      func(ctx context.Context) (domain.Settings, error)
	SaveNoteFunc func(ctx context.Context, note string) (domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		SaveNote []struct {
			Ctx  context.Context
			Note string
		}
	}
	lockGet      sync.RWMutex
	lockSaveNote sync.RWMutex
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

func (mock *settingsRepoMock) SaveNote(ctx context.Context, note string) (domain.Settings, error) {
	if mock.SaveNoteFunc == nil {
		panic("settingsRepoMock.SaveNoteFunc: method is nil but settingsRepo.SaveNote was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Note string
	}{
		Ctx:  ctx,
		Note: note,
	}
	mock.lockSaveNote.Lock()
	mock.calls.SaveNote = append(mock.calls.SaveNote, callInfo)
	mock.lockSaveNote.Unlock()
	return mock.SaveNoteFunc(ctx, note)
}

func (mock *settingsRepoMock) SaveNoteCalls() []struct {
	Ctx  context.Context
	Note string
} {
	mock.lockSaveNote.RLock()
	calls := mock.calls.SaveNote
	mock.lockSaveNote.RUnlock()
	return calls
}
