package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/notebook"
)

var _ notebookService = &notebookServiceMock{}

type notebookServiceMock struct {
	ListFaultsFunc     func(ctx context.Context) ([]domain.Fault, error)
	ListFaultsPageFunc func(ctx context.Context, input notebook.ListFaultsInput) (domain.Page[domain.Fault], error)
	CreateFaultFunc    func(ctx context.Context, input notebook.CreateFaultInput) (*domain.Fault, error)
	DeleteFaultFunc    func(ctx context.Context, id uuid.UUID) error
	GetSettingsFunc    func(ctx context.Context) (domain.Settings, error)
	SaveNoteFunc       func(ctx context.Context, input notebook.SaveNoteInput) (domain.Settings, error)

	calls struct {
		ListFaults []struct {
			Ctx context.Context
		}
		ListFaultsPage []struct {
			Ctx   context.Context
			Input notebook.ListFaultsInput
		}
		CreateFault []struct {
			Ctx   context.Context
			Input notebook.CreateFaultInput
		}
		DeleteFault []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetSettings []struct {
			Ctx context.Context
		}
		SaveNote []struct {
			Ctx   context.Context
			Input notebook.SaveNoteInput
		}
	}
	lockListFaults     sync.RWMutex
	lockListFaultsPage sync.RWMutex
	lockCreateFault    sync.RWMutex
	lockDeleteFault    sync.RWMutex
	lockGetSettings    sync.RWMutex
	lockSaveNote       sync.RWMutex
}

func (mock *notebookServiceMock) ListFaults(ctx context.Context) ([]domain.Fault, error) {
	if mock.ListFaultsFunc == nil {
		panic("notebookServiceMock.ListFaultsFunc: method is nil but notebookService.ListFaults was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListFaults.Lock()
	mock.calls.ListFaults = append(mock.calls.ListFaults, callInfo)
	mock.lockListFaults.Unlock()
	return mock.ListFaultsFunc(ctx)
}

func (mock *notebookServiceMock) ListFaultsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListFaults.RLock()
	calls := mock.calls.ListFaults
	mock.lockListFaults.RUnlock()
	return calls
}

func (mock *notebookServiceMock) ListFaultsPage(ctx context.Context, input notebook.ListFaultsInput) (domain.Page[domain.Fault], error) {
	if mock.ListFaultsPageFunc == nil {
		panic("notebookServiceMock.ListFaultsPageFunc: method is nil but notebookService.ListFaultsPage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notebook.ListFaultsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListFaultsPage.Lock()
	mock.calls.ListFaultsPage = append(mock.calls.ListFaultsPage, callInfo)
	mock.lockListFaultsPage.Unlock()
	return mock.ListFaultsPageFunc(ctx, input)
}

func (mock *notebookServiceMock) ListFaultsPageCalls() []struct {
	Ctx   context.Context
	Input notebook.ListFaultsInput
} {
	mock.lockListFaultsPage.RLock()
	calls := mock.calls.ListFaultsPage
	mock.lockListFaultsPage.RUnlock()
	return calls
}

func (mock *notebookServiceMock) CreateFault(ctx context.Context, input notebook.CreateFaultInput) (*domain.Fault, error) {
	if mock.CreateFaultFunc == nil {
		panic("notebookServiceMock.CreateFaultFunc: method is nil but notebookService.CreateFault was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notebook.CreateFaultInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateFault.Lock()
	mock.calls.CreateFault = append(mock.calls.CreateFault, callInfo)
	mock.lockCreateFault.Unlock()
	return mock.CreateFaultFunc(ctx, input)
}

func (mock *notebookServiceMock) CreateFaultCalls() []struct {
	Ctx   context.Context
	Input notebook.CreateFaultInput
} {
	mock.lockCreateFault.RLock()
	calls := mock.calls.CreateFault
	mock.lockCreateFault.RUnlock()
	return calls
}

func (mock *notebookServiceMock) DeleteFault(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFaultFunc == nil {
		panic("notebookServiceMock.DeleteFaultFunc: method is nil but notebookService.DeleteFault was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteFault.Lock()
	mock.calls.DeleteFault = append(mock.calls.DeleteFault, callInfo)
	mock.lockDeleteFault.Unlock()
	return mock.DeleteFaultFunc(ctx, id)
}

func (mock *notebookServiceMock) DeleteFaultCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteFault.RLock()
	calls := mock.calls.DeleteFault
	mock.lockDeleteFault.RUnlock()
	return calls
}

func (mock *notebookServiceMock) GetSettings(ctx context.Context) (domain.Settings, error) {
	if mock.GetSettingsFunc == nil {
		panic("notebookServiceMock.GetSettingsFunc: method is nil but notebookService.GetSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx)
}

func (mock *notebookServiceMock) GetSettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetSettings.RLock()
	calls := mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *notebookServiceMock) SaveNote(ctx context.Context, input notebook.SaveNoteInput) (domain.Settings, error) {
	if mock.SaveNoteFunc == nil {
		panic("notebookServiceMock.SaveNoteFunc: method is nil but notebookService.SaveNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notebook.SaveNoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSaveNote.Lock()
	mock.calls.SaveNote = append(mock.calls.SaveNote, callInfo)
	mock.lockSaveNote.Unlock()
	return mock.SaveNoteFunc(ctx, input)
}

func (mock *notebookServiceMock) SaveNoteCalls() []struct {
	Ctx   context.Context
	Input notebook.SaveNoteInput
} {
	mock.lockSaveNote.RLock()
	calls := mock.calls.SaveNote
	mock.lockSaveNote.RUnlock()
	return calls
}
