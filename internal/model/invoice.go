// Package model defines the invoice data model, normalization of partial
// caller input, and the financial calculator.
package model

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/rezonia/invoice-generator/internal/currency"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	default:
		return false
	}
}

// Party holds sender or recipient details.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// Item is a single billable line entry.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// LineTotal returns quantity * unitPrice.
func (it Item) LineTotal() float64 {
	return it.Quantity * it.UnitPrice
}

// Draft is the raw invoice record as submitted by a caller. Every field is
// optional; Normalize fills defaults and computes derived totals.
//
// TaxRate is a pointer so an explicit zero can be told apart from an unset
// field: nil takes the currency's default rate, a caller-supplied 0 stays 0.
type Draft struct {
	ID            string     `json:"id,omitempty"`
	InvoiceNumber string     `json:"invoiceNumber,omitempty"`
	Date          time.Time  `json:"date"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Status        Status     `json:"status,omitempty"`
	From          Party      `json:"from"`
	To            Party      `json:"to"`
	Items         []Item     `json:"items"`
	Currency      string     `json:"currency,omitempty"`
	TaxRate       *float64   `json:"taxRate,omitempty"`
	Discount      float64    `json:"discount,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Terms         string     `json:"terms,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Derived fields a caller may echo back. Never trusted: Normalize
	// recomputes them from items, discount and tax rate.
	Subtotal  float64 `json:"subtotal,omitempty"`
	TaxAmount float64 `json:"taxAmount,omitempty"`
	Total     float64 `json:"total,omitempty"`
}

// Invoice is a fully normalized invoice record with computed totals.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoiceNumber"`
	Date          time.Time  `json:"date"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Status        Status     `json:"status"`
	From          Party      `json:"from"`
	To            Party      `json:"to"`
	Items         []Item     `json:"items"`
	Currency      string     `json:"currency"`
	TaxRate       float64    `json:"taxRate"`
	Discount      float64    `json:"discount"`
	Subtotal      float64    `json:"subtotal"`
	TaxAmount     float64    `json:"taxAmount"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes,omitempty"`
	Terms         string     `json:"terms,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Normalize fills every unset field of a draft with its default and computes
// the derived totals. It never mutates the draft and never fails: validity
// is a separate question answered by Validate.
func Normalize(d Draft) *Invoice {
	return NormalizeAt(d, time.Now().UTC())
}

// NormalizeAt is Normalize with an injected clock, for deterministic tests.
func NormalizeAt(d Draft, now time.Time) *Invoice {
	inv := &Invoice{
		ID:            d.ID,
		InvoiceNumber: d.InvoiceNumber,
		Date:          d.Date,
		DueDate:       d.DueDate,
		Status:        d.Status,
		From:          d.From,
		To:            d.To,
		Items:         append([]Item(nil), d.Items...),
		Currency:      d.Currency,
		Discount:      d.Discount,
		Notes:         d.Notes,
		Terms:         d.Terms,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = NewInvoiceNumber(now)
	}
	if inv.Date.IsZero() {
		inv.Date = now
	}
	if !inv.Status.Valid() {
		inv.Status = StatusDraft
	}
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
	if d.TaxRate != nil {
		inv.TaxRate = *d.TaxRate
	} else {
		inv.TaxRate = currency.Lookup(inv.Currency).DefaultRate
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = now
	}

	inv.Calculate()
	return inv
}

// Calculate recomputes subtotal, tax amount and total:
//
//	subtotal  = Σ quantity * unitPrice
//	taxAmount = (subtotal - discount) * taxRate/100
//	total     = subtotal - discount + taxAmount
//
// Calling it again on an unchanged invoice yields identical values.
func (inv *Invoice) Calculate() {
	subtotal := 0.0
	for _, it := range inv.Items {
		subtotal += it.LineTotal()
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = (subtotal - inv.Discount) * (inv.TaxRate / 100)
	inv.Total = subtotal - inv.Discount + inv.TaxAmount
}

// NewInvoiceNumber generates a number in the form INV-YYYYMM-RRRR where RRRR
// is a zero-padded random four digit value.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("200601"), rand.IntN(10000))
}
