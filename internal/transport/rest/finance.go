package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/finance"
)

type financeService interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsPage(ctx context.Context, input finance.PageInput) (domain.Page[domain.Transaction], error)
	Balance(ctx context.Context) (decimal.Decimal, error)
	CreateTransaction(ctx context.Context, input finance.CreateTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error

	ListSales(ctx context.Context) ([]domain.Sale, error)
	ListSalesPage(ctx context.Context, input finance.PageInput) (domain.Page[domain.Sale], error)
	SalesTotals(ctx context.Context) (domain.SalesTotals, error)
	CreateSale(ctx context.Context, input finance.CreateSaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id uuid.UUID) error

	ListProjects(ctx context.Context, region domain.ProjectTag) ([]domain.IncomeProject, error)
	ListProjectsPage(ctx context.Context, input finance.PageInput) (domain.Page[domain.IncomeProject], error)
	Shares(ctx context.Context) (finance.ShareSummary, error)
	CreateProject(ctx context.Context, input finance.CreateProjectInput) (*domain.IncomeProject, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// FinanceHandler serves transactions, sales and income projects.
type FinanceHandler struct {
	svc financeService
	log *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: logger.With("handler", "finance")}
}

type createTransactionRequest struct {
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Kind        string  `json:"kind"`
	DisplayDate *string `json:"display_date"`
}

type createSaleRequest struct {
	SaleAmount         string `json:"sale_amount"`
	ExpenseAmount      string `json:"expense_amount"`
	Currency           string `json:"currency"`
	ExpenseDescription string `json:"expense_description"`
}

type createProjectRequest struct {
	Region      string  `json:"region"`
	Name        string  `json:"name"`
	Cost        string  `json:"cost"`
	Currency    string  `json:"currency"`
	DisplayDate *string `json:"display_date"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

// ListTransactions handles GET /api/transactions.
func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}
	if !paged {
		list, err := h.svc.ListTransactions(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toTransactionResponse))
		return
	}

	page, err := h.svc.ListTransactionsPage(r.Context(), finance.PageInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toTransactionResponse))
}

// Balance handles GET /api/transactions/balance.
func (h *FinanceHandler) Balance(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Balance(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: b})
}

// CreateTransaction handles POST /api/transactions.
func (h *FinanceHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tx, err := h.svc.CreateTransaction(r.Context(), finance.CreateTransactionInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Kind:        domain.TransactionKind(req.Kind),
		DisplayDate: req.DisplayDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(*tx))
}

// DeleteTransaction handles DELETE /api/transactions/{id}.
func (h *FinanceHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteTransaction)
}

// ---------------------------------------------------------------------------
// Sales
// ---------------------------------------------------------------------------

// ListSales handles GET /api/sales.
func (h *FinanceHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}
	if !paged {
		list, err := h.svc.ListSales(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toSaleResponse))
		return
	}

	page, err := h.svc.ListSalesPage(r.Context(), finance.PageInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toSaleResponse))
}

// SalesTotals handles GET /api/sales/totals.
func (h *FinanceHandler) SalesTotals(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.SalesTotals(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, salesTotalsResponse{
		Sales:     t.Sales,
		Expenses:  t.Expenses,
		NetProfit: t.NetProfit,
		Count:     t.Count,
	})
}

// CreateSale handles POST /api/sales.
func (h *FinanceHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.CreateSale(r.Context(), finance.CreateSaleInput{
		SaleAmount:         req.SaleAmount,
		ExpenseAmount:      req.ExpenseAmount,
		Currency:           req.Currency,
		ExpenseDescription: req.ExpenseDescription,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSaleResponse(*s))
}

// DeleteSale handles DELETE /api/sales/{id}.
func (h *FinanceHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteSale)
}

// ---------------------------------------------------------------------------
// Income projects
// ---------------------------------------------------------------------------

// ListProjects handles GET /api/projects?region=.
func (h *FinanceHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	limit, cursor, paged, ok := pageQuery(w, r)
	if !ok {
		return
	}
	if !paged {
		list, err := h.svc.ListProjects(r.Context(), domain.ProjectTag(r.URL.Query().Get("region")))
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, listOf(list, toProjectResponse))
		return
	}

	page, err := h.svc.ListProjectsPage(r.Context(), finance.PageInput{Limit: limit, Cursor: cursor})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageOf(page, toProjectResponse))
}

// Shares handles GET /api/projects/shares.
func (h *FinanceHandler) Shares(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Shares(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSharesResponse(sum.Totals, sum.Shares))
}

// CreateProject handles POST /api/projects.
func (h *FinanceHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.CreateProject(r.Context(), finance.CreateProjectInput{
		Region:      domain.ProjectTag(req.Region),
		Name:        req.Name,
		Cost:        req.Cost,
		Currency:    req.Currency,
		DisplayDate: req.DisplayDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(*p))
}

// DeleteProject handles DELETE /api/projects/{id}.
func (h *FinanceHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.svc.DeleteProject)
}

func (h *FinanceHandler) deleteByID(w http.ResponseWriter, r *http.Request, del func(context.Context, uuid.UUID) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
