package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/reminder"
)

var _ reminderService = &reminderServiceMock{}

type reminderServiceMock struct {
	DraftRemindersFunc func(ctx context.Context, input reminder.DraftInput) (domain.ReminderBatch, error)
	CheckAPIKeyFunc    func(ctx context.Context, input reminder.APIKeyInput) (bool, error)
	SaveAPIKeyFunc     func(ctx context.Context, input reminder.APIKeyInput) (bool, domain.Settings, error)
	ClearAPIKeyFunc    func(ctx context.Context) (domain.Settings, error)

	calls struct {
		DraftReminders []struct {
			Ctx   context.Context
			Input reminder.DraftInput
		}
		CheckAPIKey []struct {
			Ctx   context.Context
			Input reminder.APIKeyInput
		}
		SaveAPIKey []struct {
			Ctx   context.Context
			Input reminder.APIKeyInput
		}
		ClearAPIKey []struct {
			Ctx context.Context
		}
	}
	lockDraftReminders sync.RWMutex
	lockCheckAPIKey    sync.RWMutex
	lockSaveAPIKey     sync.RWMutex
	lockClearAPIKey    sync.RWMutex
}

func (mock *reminderServiceMock) DraftReminders(ctx context.Context, input reminder.DraftInput) (domain.ReminderBatch, error) {
	if mock.DraftRemindersFunc == nil {
		panic("reminderServiceMock.DraftRemindersFunc: method is nil but reminderService.DraftReminders was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reminder.DraftInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDraftReminders.Lock()
	mock.calls.DraftReminders = append(mock.calls.DraftReminders, callInfo)
	mock.lockDraftReminders.Unlock()
	return mock.DraftRemindersFunc(ctx, input)
}

func (mock *reminderServiceMock) DraftRemindersCalls() []struct {
	Ctx   context.Context
	Input reminder.DraftInput
} {
	mock.lockDraftReminders.RLock()
	calls := mock.calls.DraftReminders
	mock.lockDraftReminders.RUnlock()
	return calls
}

func (mock *reminderServiceMock) CheckAPIKey(ctx context.Context, input reminder.APIKeyInput) (bool, error) {
	if mock.CheckAPIKeyFunc == nil {
		panic("reminderServiceMock.CheckAPIKeyFunc: method is nil but reminderService.CheckAPIKey was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reminder.APIKeyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCheckAPIKey.Lock()
	mock.calls.CheckAPIKey = append(mock.calls.CheckAPIKey, callInfo)
	mock.lockCheckAPIKey.Unlock()
	return mock.CheckAPIKeyFunc(ctx, input)
}

func (mock *reminderServiceMock) CheckAPIKeyCalls() []struct {
	Ctx   context.Context
	Input reminder.APIKeyInput
} {
	mock.lockCheckAPIKey.RLock()
	calls := mock.calls.CheckAPIKey
	mock.lockCheckAPIKey.RUnlock()
	return calls
}

func (mock *reminderServiceMock) SaveAPIKey(ctx context.Context, input reminder.APIKeyInput) (bool, domain.Settings, error) {
	if mock.SaveAPIKeyFunc == nil {
		panic("reminderServiceMock.SaveAPIKeyFunc: method is nil but reminderService.SaveAPIKey was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reminder.APIKeyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSaveAPIKey.Lock()
	mock.calls.SaveAPIKey = append(mock.calls.SaveAPIKey, callInfo)
	mock.lockSaveAPIKey.Unlock()
	return mock.SaveAPIKeyFunc(ctx, input)
}

func (mock *reminderServiceMock) SaveAPIKeyCalls() []struct {
	Ctx   context.Context
	Input reminder.APIKeyInput
} {
	mock.lockSaveAPIKey.RLock()
	calls := mock.calls.SaveAPIKey
	mock.lockSaveAPIKey.RUnlock()
	return calls
}

func (mock *reminderServiceMock) ClearAPIKey(ctx context.Context) (domain.Settings, error) {
	if mock.ClearAPIKeyFunc == nil {
		panic("reminderServiceMock.ClearAPIKeyFunc: method is nil but reminderService.ClearAPIKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockClearAPIKey.Lock()
	mock.calls.ClearAPIKey = append(mock.calls.ClearAPIKey, callInfo)
	mock.lockClearAPIKey.Unlock()
	return mock.ClearAPIKeyFunc(ctx)
}

func (mock *reminderServiceMock) ClearAPIKeyCalls() []struct {
	Ctx context.Context
} {
	mock.lockClearAPIKey.RLock()
	calls := mock.calls.ClearAPIKey
	mock.lockClearAPIKey.RUnlock()
	return calls
}
