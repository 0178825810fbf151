package server

import (
	"github.com/rezonia/invoice-generator/internal/currency"
	"github.com/rezonia/invoice-generator/internal/model"
)

// IndexResponse describes the API surface at the root route.
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// GenerateErrorResponse is returned when an invoice fails validation; it
// carries every violation, not just the first.
type GenerateErrorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ValidateResponse is the response for the validate endpoint. Invoice is the
// normalized record with defaults filled and totals computed.
type ValidateResponse struct {
	Valid   bool           `json:"valid"`
	Errors  []string       `json:"errors"`
	Invoice *model.Invoice `json:"invoice"`
}

// CurrencyResponse is a currency code with its tax metadata.
type CurrencyResponse struct {
	Code  string `json:"code"`
	Known bool   `json:"known,omitempty"`
	currency.TaxInfo
}
