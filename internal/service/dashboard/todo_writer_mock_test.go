package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
)

var _ todoWriter = &todoWriterMock{}

type todoWriterMock struct {
	CreateTodoFunc   func(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	SetCompletedFunc func(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error)
	DeleteTodoFunc   func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateTodo []struct {
			Ctx   context.Context
			Input todo.CreateTodoInput
		}
		SetCompleted []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Completed bool
		}
		DeleteTodo []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateTodo   sync.RWMutex
	lockSetCompleted sync.RWMutex
	lockDeleteTodo   sync.RWMutex
}

func (mock *todoWriterMock) CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error) {
	if mock.CreateTodoFunc == nil {
		panic("todoWriterMock.CreateTodoFunc: method is nil but todoWriter.CreateTodo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.CreateTodoInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTodo.Lock()
	mock.calls.CreateTodo = append(mock.calls.CreateTodo, callInfo)
	mock.lockCreateTodo.Unlock()
	return mock.CreateTodoFunc(ctx, input)
}

func (mock *todoWriterMock) CreateTodoCalls() []struct {
	Ctx   context.Context
	Input todo.CreateTodoInput
} {
	mock.lockCreateTodo.RLock()
	calls := mock.calls.CreateTodo
	mock.lockCreateTodo.RUnlock()
	return calls
}

func (mock *todoWriterMock) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error) {
	if mock.SetCompletedFunc == nil {
		panic("todoWriterMock.SetCompletedFunc: method is nil but todoWriter.SetCompleted was just called")
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
	mock.lockSetCompleted.Lock()
	mock.calls.SetCompleted = append(mock.calls.SetCompleted, callInfo)
	mock.lockSetCompleted.Unlock()
	return mock.SetCompletedFunc(ctx, id, completed)
}

func (mock *todoWriterMock) SetCompletedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Completed bool
} {
	mock.lockSetCompleted.RLock()
	calls := mock.calls.SetCompleted
	mock.lockSetCompleted.RUnlock()
	return calls
}

func (mock *todoWriterMock) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTodoFunc == nil {
		panic("todoWriterMock.DeleteTodoFunc: method is nil but todoWriter.DeleteTodo was just called")
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

func (mock *todoWriterMock) DeleteTodoCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTodo.RLock()
	calls := mock.calls.DeleteTodo
	mock.lockDeleteTodo.RUnlock()
	return calls
}
