package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
	"github.com/heartmarshall/officedash-backend/internal/service/dashboard"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	SnapshotFunc         func() dashboard.Snapshot
	RefreshFunc          func(ctx context.Context) (dashboard.Snapshot, error)
	AddTodoFunc          func(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	SetTodoCompletedFunc func(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error)
	DeleteTodoFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Snapshot []struct{}
		Refresh []struct {
			Ctx context.Context
		}
		AddTodo []struct {
			Ctx   context.Context
			Input todo.CreateTodoInput
		}
		SetTodoCompleted []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Completed bool
		}
		DeleteTodo []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockSnapshot         sync.RWMutex
	lockRefresh          sync.RWMutex
	lockAddTodo          sync.RWMutex
	lockSetTodoCompleted sync.RWMutex
	lockDeleteTodo       sync.RWMutex
}

func (mock *dashboardServiceMock) Snapshot() dashboard.Snapshot {
	if mock.SnapshotFunc == nil {
		panic("dashboardServiceMock.SnapshotFunc: method is nil but dashboardService.Snapshot was just called")
	}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, struct{}{})
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc()
}

func (mock *dashboardServiceMock) SnapshotCalls() []struct{} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) Refresh(ctx context.Context) (dashboard.Snapshot, error) {
	if mock.RefreshFunc == nil {
		panic("dashboardServiceMock.RefreshFunc: method is nil but dashboardService.Refresh was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx)
}

func (mock *dashboardServiceMock) RefreshCalls() []struct {
	Ctx context.Context
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) AddTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error) {
	if mock.AddTodoFunc == nil {
		panic("dashboardServiceMock.AddTodoFunc: method is nil but dashboardService.AddTodo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.CreateTodoInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddTodo.Lock()
	mock.calls.AddTodo = append(mock.calls.AddTodo, callInfo)
	mock.lockAddTodo.Unlock()
	return mock.AddTodoFunc(ctx, input)
}

func (mock *dashboardServiceMock) AddTodoCalls() []struct {
	Ctx   context.Context
	Input todo.CreateTodoInput
} {
	mock.lockAddTodo.RLock()
	calls := mock.calls.AddTodo
	mock.lockAddTodo.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) SetTodoCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error) {
	if mock.SetTodoCompletedFunc == nil {
		panic("dashboardServiceMock.SetTodoCompletedFunc: method is nil but dashboardService.SetTodoCompleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Completed bool
	}{
		Ctx:       ctx,
		ID:        id,
		Completed: completed,
	}
	mock.lockSetTodoCompleted.Lock()
	mock.calls.SetTodoCompleted = append(mock.calls.SetTodoCompleted, callInfo)
	mock.lockSetTodoCompleted.Unlock()
	return mock.SetTodoCompletedFunc(ctx, id, completed)
}

func (mock *dashboardServiceMock) SetTodoCompletedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Completed bool
} {
	mock.lockSetTodoCompleted.RLock()
	calls := mock.calls.SetTodoCompleted
	mock.lockSetTodoCompleted.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTodoFunc == nil {
		panic("dashboardServiceMock.DeleteTodoFunc: method is nil but dashboardService.DeleteTodo was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteTodo.Lock()
	mock.calls.DeleteTodo = append(mock.calls.DeleteTodo, callInfo)
	mock.lockDeleteTodo.Unlock()
	return mock.DeleteTodoFunc(ctx, id)
}

func (mock *dashboardServiceMock) DeleteTodoCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTodo.RLock()
	calls := mock.calls.DeleteTodo
	mock.lockDeleteTodo.RUnlock()
	return calls
}
