package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

type pageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

func listOf[S, T any](items []S, conv func(S) T) pageResponse[T] {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return pageResponse[T]{Items: out}
}

func pageOf[S, T any](page domain.Page[S], conv func(S) T) pageResponse[T] {
	resp := listOf(page.Items, conv)
	resp.NextCursor = page.NextCursor
	resp.HasMore = page.HasMore
	return resp
}

type domainResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	State       string           `json:"state"`
	CollectedAt string           `json:"collected_at"`
	RenewsAt    string           `json:"renews_at"`
	DataSheet   string           `json:"data_sheet"`
	ClientCost  *decimal.Decimal `json:"client_cost"`
	OfficeCost  *decimal.Decimal `json:"office_cost"`
	Projects    []string         `json:"projects"`
	ClientName  *string          `json:"client_name,omitempty"`
	ClientEmail *string          `json:"client_email,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toDomainResponse(d domain.Domain) domainResponse {
	projects := make([]string, len(d.Projects))
	for i, p := range d.Projects {
		projects[i] = p.String()
	}
	return domainResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		State:       d.State.String(),
		CollectedAt: d.CollectedAt.Format(dateLayout),
		RenewsAt:    d.RenewsAt.Format(dateLayout),
		DataSheet:   d.DataSheet,
		ClientCost:  nullable(d.ClientCost),
		OfficeCost:  nullable(d.OfficeCost),
		Projects:    projects,
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func nullable(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	return &n.Decimal
}

type todoResponse struct {
	ID          string     `json:"id"`
	DomainID    *string    `json:"domain_id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toTodoResponse(t domain.Todo) todoResponse {
	resp := todoResponse{
		ID:          t.ID.String(),
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
	if t.DomainID != nil {
		id := t.DomainID.String()
		resp.DomainID = &id
	}
	return resp
}

type faultResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func toFaultResponse(f domain.Fault) faultResponse {
	return faultResponse{ID: f.ID.String(), Text: f.Text, CreatedAt: f.CreatedAt}
}

type transactionResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	DisplayDate *string         `json:"display_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Amount:      t.Amount,
		Kind:        string(t.Kind()),
		DisplayDate: t.DisplayDate,
		CreatedAt:   t.CreatedAt,
	}
}

type saleResponse struct {
	ID                 string          `json:"id"`
	SaleAmount         decimal.Decimal `json:"sale_amount"`
	ExpenseAmount      decimal.Decimal `json:"expense_amount"`
	ExpenseDescription string          `json:"expense_description"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toSaleResponse(s domain.Sale) saleResponse {
	return saleResponse{
		ID:                 s.ID.String(),
		SaleAmount:         s.SaleAmount,
		ExpenseAmount:      s.ExpenseAmount,
		ExpenseDescription: s.ExpenseDescription,
		NetProfit:          s.NetProfit,
		CreatedAt:          s.CreatedAt,
	}
}

type salesTotalsResponse struct {
	Sales     decimal.Decimal `json:"sales"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"net_profit"`
	Count     int             `json:"count"`
}

type projectResponse struct {
	ID          string          `json:"id"`
	Region      string          `json:"region"`
	Name        string          `json:"name"`
	Cost        decimal.Decimal `json:"cost"`
	DisplayDate *string         `json:"display_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toProjectResponse(p domain.IncomeProject) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		Region:      p.Region.String(),
		Name:        p.Name,
		Cost:        p.Cost,
		DisplayDate: p.DisplayDate,
		CreatedAt:   p.CreatedAt,
	}
}

type sharesResponse struct {
	Regions struct {
		Egypt decimal.Decimal `json:"egypt"`
		Saudi decimal.Decimal `json:"saudi"`
		Mah   decimal.Decimal `json:"mah"`
	} `json:"regions"`
	Total      decimal.Decimal `json:"total"`
	Marketing  decimal.Decimal `json:"marketing"`
	MainOffice decimal.Decimal `json:"main_office"`
	Clearance  decimal.Decimal `json:"clearance"`
}

func toSharesResponse(t domain.RegionTotals, s domain.Shares) sharesResponse {
	var resp sharesResponse
	resp.Regions.Egypt = t.Egypt
	resp.Regions.Saudi = t.Saudi
	resp.Regions.Mah = t.Mah
	resp.Total = s.Total
	resp.Marketing = s.Marketing
	resp.MainOffice = s.MainOffice
	resp.Clearance = s.Clearance
	return resp
}

// settingsResponse never carries the API key itself.
type settingsResponse struct {
	Note      string    `json:"note"`
	HasAIKey  bool      `json:"has_ai_key"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	return settingsResponse{Note: s.Note, HasAIKey: s.HasAIKey(), UpdatedAt: s.UpdatedAt}
}

type moneyRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}
