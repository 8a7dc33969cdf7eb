package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/dashboard"
	"github.com/heartmarshall/officedash-backend/internal/service/todo"
)

type dashboardService interface {
	Snapshot() dashboard.Snapshot
	Refresh(ctx context.Context) (dashboard.Snapshot, error)
	AddTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	SetTodoCompleted(ctx context.Context, id uuid.UUID, completed bool) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type domainViewResponse struct {
	domainResponse
	Status       string  `json:"status"`
	Progress     float64 `json:"progress"`
	DaysLeft     int     `json:"days_left"`
	HasOpenTasks bool    `json:"has_open_tasks"`
}

type statusCountsResponse struct {
	Checking int `json:"checking"`
	Online   int `json:"online"`
	Offline  int `json:"offline"`
}

type snapshotResponse struct {
	Cycle        uint64               `json:"cycle"`
	Refreshing   bool                 `json:"refreshing"`
	RefreshedAt  *time.Time           `json:"refreshed_at"`
	Counts       statusCountsResponse `json:"counts"`
	Domains      []domainViewResponse `json:"domains"`
	Todos        []todoResponse       `json:"todos"`
	GeneralTodos []todoResponse       `json:"general_todos"`
}

type setCompletedRequest struct {
	Completed *bool `json:"completed"`
}

func toSnapshotResponse(s dashboard.Snapshot) snapshotResponse {
	counts := s.Counts()
	resp := snapshotResponse{
		Cycle:        s.Cycle,
		Refreshing:   s.Refreshing,
		Counts:       statusCountsResponse{Checking: counts.Checking, Online: counts.Online, Offline: counts.Offline},
		Domains:      make([]domainViewResponse, len(s.Domains)),
		Todos:        listOf(s.Todos, toTodoResponse).Items,
		GeneralTodos: listOf(s.GeneralTodos(), toTodoResponse).Items,
	}
	if !s.RefreshedAt.IsZero() {
		at := s.RefreshedAt
		resp.RefreshedAt = &at
	}
	for i, v := range s.Domains {
		resp.Domains[i] = domainViewResponse{
			domainResponse: toDomainResponse(v.Domain),
			Status:         v.Status.String(),
			Progress:       v.Progress,
			DaysLeft:       v.DaysLeft,
			HasOpenTasks:   v.HasOpenTasks,
		}
	}
	return resp
}

// Snapshot handles GET /api/dashboard.
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSnapshotResponse(h.svc.Snapshot()))
}

// Refresh handles POST /api/dashboard/refresh. The cycle runs to completion
// even if the caller disconnects, so the shared view never stalls in checking.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Refresh(context.WithoutCancel(r.Context()))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// AddTodo handles POST /api/dashboard/todos.
func (h *DashboardHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeCreateTodo(w, r, h.log)
	if !ok {
		return
	}
	t, err := h.svc.AddTodo(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTodoResponse(*t))
}

// SetTodoCompleted handles PATCH /api/dashboard/todos/{id}.
func (h *DashboardHandler) SetTodoCompleted(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setCompletedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Completed == nil {
		handleError(w, r, h.log, domain.NewValidationError("completed", "required"))
		return
	}

	t, err := h.svc.SetTodoCompleted(r.Context(), id, *req.Completed)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodoResponse(*t))
}

// DeleteTodo handles DELETE /api/dashboard/todos/{id}.
func (h *DashboardHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
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
