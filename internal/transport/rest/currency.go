package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/officedash-backend/internal/domain"
	"github.com/heartmarshall/officedash-backend/internal/service/currency"
)

type currencyService interface {
	Status() currency.Status
	Refresh(ctx context.Context) currency.Status
	Convert(input currency.ConvertInput) (currency.Conversion, error)
}

// CurrencyHandler exposes the current rate table and conversions.
type CurrencyHandler struct {
	svc currencyService
	log *slog.Logger
}

// NewCurrencyHandler creates a CurrencyHandler.
func NewCurrencyHandler(svc currencyService, logger *slog.Logger) *CurrencyHandler {
	return &CurrencyHandler{svc: svc, log: logger.With("handler", "currency")}
}

type rateStatusResponse struct {
	Base      string          `json:"base"`
	EGPPerUSD decimal.Decimal `json:"egp_per_usd"`
	SARPerUSD decimal.Decimal `json:"sar_per_usd"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type conversionResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Base     decimal.Decimal `json:"base"`
	Divisor  decimal.Decimal `json:"divisor"`
}

func toRateStatus(st currency.Status) rateStatusResponse {
	return rateStatusResponse{
		Base:      string(domain.BaseCurrency),
		EGPPerUSD: st.EGPPerUSD,
		SARPerUSD: domain.SARPerUSD,
		Source:    string(st.Source),
		UpdatedAt: st.UpdatedAt,
	}
}

// Status handles GET /api/currency.
func (h *CurrencyHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRateStatus(h.svc.Status()))
}

// Refresh handles POST /api/currency/refresh. It never fails; a failed fetch
// reports the cache or fallback source.
func (h *CurrencyHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRateStatus(h.svc.Refresh(r.Context())))
}

// Convert handles GET /api/currency/convert?amount=&currency=.
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := h.svc.Convert(currency.ConvertInput{Amount: q.Get("amount"), Currency: q.Get("currency")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, conversionResponse{
		Amount:   c.Amount,
		Currency: string(c.Currency),
		Base:     c.Base,
		Divisor:  c.Divisor,
	})
}
