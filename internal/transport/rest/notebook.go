package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/notebook"
)

type notebookService interface {
	ListFaults(ctx context.Context) ([]domain.Fault, error)
	ListFaultsPage(ctx context.Context, input notebook.ListFaultsInput) (domain.Page[domain.Fault], error)
	CreateFault(ctx context.Context, input notebook.CreateFaultInput) (*domain.Fault, error)
	DeleteFault(ctx context.Context, id uuid.UUID) error
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveNote(ctx context.Context, input notebook.SaveNoteInput) (domain.Settings, error)
}

// NotebookHandler serves the common-faults list and the shared note.
type NotebookHandler struct {
	svc notebookService
	log *slog.Logger
}

// NewNotebookHandler creates a NotebookHandler.
func NewNotebookHandler(svc notebookService, logger *slog.Logger) *NotebookHandler {
	return &NotebookHandler{svc: svc, log: logger.With("handler", "notebook")}
}

type createFaultRequest struct {
	Text string `json:"text"`
}

type saveNoteRequest struct {
	Note string `json:"note"`
}

// ListFaults handles GET /api/faults.
func (h *NotebookHandler) ListFaults(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}
	if !paged {
		list, err := h.svc.ListFaults(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toFaultResponse))
		return
	}

	page, err := h.svc.ListFaultsPage(r.Context(), notebook.ListFaultsInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toFaultResponse))
}

// CreateFault handles POST /api/faults.
func (h *NotebookHandler) CreateFault(w http.ResponseWriter, r *http.Request) {
	var req createFaultRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.svc.CreateFault(r.Context(), notebook.CreateFaultInput{Text: req.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFaultResponse(*f))
}

// DeleteFault handles DELETE /api/faults/{id}.
func (h *NotebookHandler) DeleteFault(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteFault(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Settings handles GET /api/settings.
func (h *NotebookHandler) Settings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// SaveNote handles PUT /api/settings/note.
func (h *NotebookHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req saveNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.SaveNote(r.Context(), notebook.SaveNoteInput{Note: req.Note})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}
