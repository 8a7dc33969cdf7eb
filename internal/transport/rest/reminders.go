package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/reminder"
)

type reminderService interface {
	DraftReminders(ctx context.Context, input reminder.DraftInput) (domain.ReminderBatch, error)
	CheckAPIKey(ctx context.Context, input reminder.APIKeyInput) (bool, error)
	SaveAPIKey(ctx context.Context, input reminder.APIKeyInput) (bool, domain.Settings, error)
	ClearAPIKey(ctx context.Context) (domain.Settings, error)
}

// ReminderHandler serves reminder drafting and AI key management.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminders")}
}

type draftRequest struct {
	WithinDays int `json:"within_days"`
}

type draftResponse struct {
	Generated bool              `json:"generated"`
	Reminders []domain.Reminder `json:"reminders"`
}

type apiKeyRequest struct {
	Key string `json:"key"`
}

type apiKeyCheckResponse struct {
	Valid bool `json:"valid"`
}

type apiKeySaveResponse struct {
	Valid    bool             `json:"valid"`
	Settings settingsResponse `json:"settings"`
}

// Draft handles POST /api/reminders/draft. An empty body uses the configured window.
func (h *ReminderHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	batch, err := h.svc.DraftReminders(r.Context(), reminder.DraftInput{WithinDays: req.WithinDays})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	reminders := batch.Reminders
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	writeJSON(w, http.StatusOK, draftResponse{Generated: batch.Generated, Reminders: reminders})
}

// CheckKey handles POST /api/settings/ai-key/check. The key is not stored.
func (h *ReminderHandler) CheckKey(w http.ResponseWriter, r *http.Request) {
	var req apiKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	valid, err := h.svc.CheckAPIKey(r.Context(), reminder.APIKeyInput{Key: req.Key})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apiKeyCheckResponse{Valid: valid})
}

// SaveKey handles PUT /api/settings/ai-key. A key that fails the check is
// not stored and the response reports valid=false.
func (h *ReminderHandler) SaveKey(w http.ResponseWriter, r *http.Request) {
	var req apiKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	valid, settings, err := h.svc.SaveAPIKey(r.Context(), reminder.APIKeyInput{Key: req.Key})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apiKeySaveResponse{Valid: valid, Settings: toSettingsResponse(settings)})
}

// ClearKey handles DELETE /api/settings/ai-key.
func (h *ReminderHandler) ClearKey(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.ClearAPIKey(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}
