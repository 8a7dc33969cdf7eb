package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/portfolio"
)

type portfolioService interface {
	GetDomain(ctx context.Context, id uuid.UUID) (*domain.Domain, error)
	ListDomains(ctx context.Context) ([]domain.Domain, error)
	ListDomainsPage(ctx context.Context, input portfolio.ListDomainsInput) (domain.Page[domain.Domain], error)
	CreateDomain(ctx context.Context, input portfolio.CreateDomainInput) (*domain.Domain, error)
	UpdateDomain(ctx context.Context, input portfolio.UpdateDomainInput) (*domain.Domain, error)
	RenewDomain(ctx context.Context, id uuid.UUID) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, id uuid.UUID) error
	Totals(ctx context.Context) (portfolio.CostTotals, error)
}

// DomainHandler serves the domain portfolio endpoints.
type DomainHandler struct {
	svc portfolioService
	log *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(svc portfolioService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{svc: svc, log: logger.With("handler", "domains")}
}

type createDomainRequest struct {
	Name        string        `json:"name"`
	State       string        `json:"state"`
	CollectedAt string        `json:"collected_at"`
	RenewsAt    string        `json:"renews_at"`
	DataSheet   string        `json:"data_sheet"`
	ClientCost  *moneyRequest `json:"client_cost"`
	OfficeCost  *moneyRequest `json:"office_cost"`
	Projects    []string      `json:"projects"`
	ClientName  *string       `json:"client_name"`
	ClientEmail *string       `json:"client_email"`
}

type updateDomainRequest struct {
	Name        *string       `json:"name"`
	State       *string       `json:"state"`
	CollectedAt *string       `json:"collected_at"`
	RenewsAt    *string       `json:"renews_at"`
	DataSheet   *string       `json:"data_sheet"`
	ClientCost  *moneyRequest `json:"client_cost"`
	OfficeCost  *moneyRequest `json:"office_cost"`
	Projects    []string      `json:"projects"`
	ClientName  *string       `json:"client_name"`
	ClientEmail *string       `json:"client_email"`
}

type costTotalsResponse struct {
	Client  decimal.Decimal `json:"client"`
	Office  decimal.Decimal `json:"office"`
	Margin  decimal.Decimal `json:"margin"`
	Active  int             `json:"active"`
	PastDue int             `json:"past_due"`
}

// List handles GET /api/domains. Without limit or cursor the whole portfolio
// is returned in urgency order.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}

	if !paged {
		list, err := h.svc.ListDomains(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toDomainResponse))
		return
	}

	page, err := h.svc.ListDomainsPage(r.Context(), portfolio.ListDomainsInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toDomainResponse))
}

// Get handles GET /api/domains/{id}.
func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.GetDomain(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(*d))
}

// Create handles POST /api/domains.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDomainRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := portfolio.CreateDomainInput{
		Name:        req.Name,
		State:       domain.DomainState(req.State),
		DataSheet:   req.DataSheet,
		ClientCost:  toMoneyInput(req.ClientCost),
		OfficeCost:  toMoneyInput(req.OfficeCost),
		Projects:    toProjectTags(req.Projects),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}
	var err error
	if req.CollectedAt != "" {
		if input.CollectedAt, err = parseDate("collected_at", req.CollectedAt); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}
	if req.RenewsAt != "" {
		if input.RenewsAt, err = parseDate("renews_at", req.RenewsAt); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	d, err := h.svc.CreateDomain(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDomainResponse(*d))
}

// Update handles PATCH /api/domains/{id}.
func (h *DomainHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateDomainRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := portfolio.UpdateDomainInput{
		ID:          id,
		Name:        req.Name,
		DataSheet:   req.DataSheet,
		ClientCost:  toMoneyInput(req.ClientCost),
		OfficeCost:  toMoneyInput(req.OfficeCost),
		Projects:    toProjectTags(req.Projects),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	}
	if req.State != nil {
		st := domain.DomainState(*req.State)
		input.State = &st
	}
	var err error
	if input.CollectedAt, err = parseOptionalDate("collected_at", req.CollectedAt); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.RenewsAt, err = parseOptionalDate("renews_at", req.RenewsAt); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.UpdateDomain(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(*d))
}

// Renew handles POST /api/domains/{id}/renew.
func (h *DomainHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.RenewDomain(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDomainResponse(*d))
}

// Delete handles DELETE /api/domains/{id}. The domain's todos go with it.
func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteDomain(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Totals handles GET /api/domains/totals.
func (h *DomainHandler) Totals(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Totals(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, costTotalsResponse{
		Client:  t.Client,
		Office:  t.Office,
		Margin:  t.Margin,
		Active:  t.Active,
		PastDue: t.PastDue,
	})
}

func toMoneyInput(m *moneyRequest) *portfolio.MoneyInput {
	if m == nil {
		return nil
	}
	return &portfolio.MoneyInput{Amount: m.Amount, Currency: m.Currency}
}

func toProjectTags(in []string) []domain.ProjectTag {
	if in == nil {
		return nil
	}
	out := make([]domain.ProjectTag, len(in))
	for i, p := range in {
		out[i] = domain.ProjectTag(p)
	}
	return out
}
