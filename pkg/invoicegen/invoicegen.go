// Package invoicegen provides a public API for generating invoice PDFs.
//
// It exposes the invoice model, the normalization/validation step, and a
// one-call pipeline from a partial invoice record to document bytes:
//
//	inv, data, err := invoicegen.Generate(invoicegen.Draft{
//	    From:  invoicegen.Party{Name: "Acme", Email: "billing@acme.com"},
//	    To:    invoicegen.Party{Name: "Bob", Email: "bob@example.com"},
//	    Items: []invoicegen.Item{{Description: "Widget", Quantity: 3, UnitPrice: 10}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(invoicegen.Filename(inv), data, 0o644)
package invoicegen

import (
	"errors"

	"github.com/rezonia/invoice-generator/internal/currency"
	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/render"
)

// Re-export core types for public API
type (
	Draft            = model.Draft
	Invoice          = model.Invoice
	Item             = model.Item
	Party            = model.Party
	Status           = model.Status
	ValidationResult = model.ValidationResult
	TaxInfo          = currency.TaxInfo
)

// Re-export statuses
const (
	StatusDraft   = model.StatusDraft
	StatusSent    = model.StatusSent
	StatusPaid    = model.StatusPaid
	StatusOverdue = model.StatusOverdue
)

// Re-export error types
type (
	ValidationError = model.ValidationError
	RenderError     = model.RenderError
)

// Normalize fills defaults and computes totals for a partial invoice record.
func Normalize(d Draft) *Invoice {
	return model.Normalize(d)
}

// LookupTax returns the tax metadata for a currency code, falling back to a
// generic record for unknown codes.
func LookupTax(code string) TaxInfo {
	return currency.Lookup(code)
}

// Filename returns the suggested download filename for an invoice.
func Filename(inv *Invoice) string {
	return render.Filename(inv)
}

// Generate normalizes, validates and renders an invoice in one call. On
// validation failure it returns the normalized invoice together with a
// *ValidationError listing every violation; on render failure a
// *RenderError.
func Generate(d Draft) (*Invoice, []byte, error) {
	inv := model.Normalize(d)
	if result := inv.Validate(); !result.IsValid {
		return inv, nil, model.NewValidationError(result.Errors)
	}

	data, err := render.NewPDF().Render(inv)
	if err != nil {
		return inv, nil, err
	}
	return inv, data, nil
}

// IsValidationError reports whether err is a validation failure and, if so,
// returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
