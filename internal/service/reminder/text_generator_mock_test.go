package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ textGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	DraftRemindersFunc func(ctx context.Context, apiKey string, inputs []domain.ReminderInput, now time.Time) ([]domain.Reminder, error)
	CheckKeyFunc       func(ctx context.Context, apiKey string) bool

	calls struct {
		DraftReminders []struct {
			Ctx    context.Context
			ApiKey string
			Inputs []domain.ReminderInput
			Now    time.Time
		}
		CheckKey []struct {
			Ctx    context.Context
			ApiKey string
		}
	}
	lockDraftReminders sync.RWMutex
	lockCheckKey       sync.RWMutex
}

func (mock *textGeneratorMock) DraftReminders(ctx context.Context, apiKey string, inputs []domain.ReminderInput, now time.Time) ([]domain.Reminder, error) {
	if mock.DraftRemindersFunc == nil {
		panic("textGeneratorMock.DraftRemindersFunc: method is nil but textGenerator.DraftReminders was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ApiKey string
		Inputs []domain.ReminderInput
		Now    time.Time
	}{
		Ctx:    ctx,
		ApiKey: apiKey,
		Inputs: inputs,
		Now:    now,
	}
	mock.lockDraftReminders.Lock()
	mock.calls.DraftReminders = append(mock.calls.DraftReminders, callInfo)
	mock.lockDraftReminders.Unlock()
	return mock.DraftRemindersFunc(ctx, apiKey, inputs, now)
}

func (mock *textGeneratorMock) DraftRemindersCalls() []struct {
	Ctx    context.Context
	ApiKey string
	Inputs []domain.ReminderInput
	Now    time.Time
} {
	mock.lockDraftReminders.RLock()
	calls := mock.calls.DraftReminders
	mock.lockDraftReminders.RUnlock()
	return calls
}

func (mock *textGeneratorMock) CheckKey(ctx context.Context, apiKey string) bool {
	if mock.CheckKeyFunc == nil {
		panic("textGeneratorMock.CheckKeyFunc: method is nil but textGenerator.CheckKey was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ApiKey string
	}{
		Ctx:    ctx,
		ApiKey: apiKey,
	}
	mock.lockCheckKey.Lock()
	mock.calls.CheckKey = append(mock.calls.CheckKey, callInfo)
	mock.lockCheckKey.Unlock()
	return mock.CheckKeyFunc(ctx, apiKey)
}

func (mock *textGeneratorMock) CheckKeyCalls() []struct {
	Ctx    context.Context
	ApiKey string
} {
	mock.lockCheckKey.RLock()
	calls := mock.calls.CheckKey
	mock.lockCheckKey.RUnlock()
	return calls
}
