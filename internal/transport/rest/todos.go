package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
)

type todoService interface {
	GetTodo(ctx context.Context, id uuid.UUID) (*domain.Todo, error)
	ListTodos(ctx context.Context, input todo.ListTodosInput) ([]domain.Todo, error)
	ListTodosPage(ctx context.Context, input todo.ListTodosInput) (domain.Page[domain.Todo], error)
	CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}

// TodoHandler serves the todo endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todos")}
}

type createTodoRequest struct {
	DomainID *string `json:"domain_id"`
	Text     string  `json:"text"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// List handles GET /api/todos?domain_id=&general=&active=&limit=&cursor=.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	domainID, err := parseOptionalID("domain_id", q.Get("domain_id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input := todo.ListTodosInput{
		DomainID:    domainID,
		GeneralOnly: queryBool(q.Get("general")),
		ActiveOnly:  queryBool(q.Get("active")),
		Limit:       limit,
		Cursor:      cursor,
	}

	if !paged {
		list, err := h.svc.ListTodos(r.Context(), input)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toTodoResponse))
		return
	}

	page, err := h.svc.ListTodosPage(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toTodoResponse))
}

// Get handles GET /api/todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCreateTodo(w, r, h.log)
	if !ok {
		return
	}
	t, err := h.svc.CreateTodo(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoResponse(*t))
}

// Update handles PATCH /api/todos/{id}.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.UpdateTodo(r.Context(), todo.UpdateTodoInput{
		ID:        id,
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCreateTodo(w http.ResponseWriter, r *http.Request, log *slog.Logger) (todo.CreateTodoInput, bool) {
	var req createTodoRequest
	if !decodeJSON(w, r, &req) {
		return todo.CreateTodoInput{}, false
	}
	input := todo.CreateTodoInput{Text: req.Text}
	if req.DomainID != nil {
		id, err := parseOptionalID("domain_id", *req.DomainID)
		if err != nil {
			handleError(w, r, log, err)
			return todo.CreateTodoInput{}, false
		}
		input.DomainID = id
	}
	return input, true
}

func queryBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
