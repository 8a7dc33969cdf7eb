package fxrate

import "github.com/shopspring/decimal"

// apiLatest is the body of the open exchange-rate "latest" endpoint.
type apiLatest struct {
	Result             string                     `json:"result"`
	BaseCode           string                     `json:"base_code"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	Rates              map[string]decimal.Decimal `json:"rates"`
	ErrorType          string                     `json:"error-type"`
}
