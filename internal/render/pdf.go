// Package render lays out a normalized invoice into a paginated PDF
// document. Blocks are placed at fixed page coordinates: header, the
// From / Bill To party columns, the items table, the right-aligned totals
// block and the optional notes and terms blocks, in that order.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rezonia/invoice-generator/internal/currency"
	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/money"
)

// TaxLookup resolves the tax metadata for a currency code. It must be total;
// unknown codes get a generic record.
type TaxLookup func(code string) currency.TaxInfo

// Page geometry, in points. Coordinates follow the reference layout: a 50pt
// margin with absolute positions for every block.
const (
	pageMargin  = 50.0
	pageWidth   = 595.28 // A4 portrait
	pageHeight  = 841.89
	contentW    = 500.0
	partiesTop  = 150.0
	partyColX   = 300.0
	tableTop    = 280.0
	tableRowH   = 25.0
	lineH       = 15.0
	totalsLineH = 20.0
)

// Items table column x positions.
const (
	colDescX  = 60.0
	colQtyX   = 350.0
	colPriceX = 400.0
	colTotalX = 480.0
)

// PDF renders invoices into PDF byte streams. It is stateless and safe for
// concurrent use; every Render call builds an independent document.
type PDF struct {
	lookup   TaxLookup
	compress bool
}

// Option configures a PDF renderer.
type Option func(*PDF)

// WithTaxLookup overrides the currency tax metadata lookup.
func WithTaxLookup(lookup TaxLookup) Option {
	return func(r *PDF) {
		if lookup != nil {
			r.lookup = lookup
		}
	}
}

// WithCompression toggles stream compression. Disabling it keeps document
// text byte-searchable, which tests rely on.
func WithCompression(enabled bool) Option {
	return func(r *PDF) {
		r.compress = enabled
	}
}

// NewPDF creates a PDF renderer.
func NewPDF(opts ...Option) *PDF {
	r := &PDF{
		lookup:   currency.Lookup,
		compress: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filename returns the suggested download filename for an invoice document.
func Filename(inv *model.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
}

// Render produces the complete PDF document for a normalized invoice. The
// returned bytes are the whole, finalized stream; on any layout or write
// failure no partial document is returned.
func (r *PDF) Render(inv *model.Invoice) ([]byte, error) {
	if len(inv.Items) == 0 {
		return nil, model.NewRenderError("items_table", "invoice has no line items", nil)
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetCompression(r.compress)
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	taxInfo := r.lookup(inv.Currency)

	r.drawHeader(doc, tr, inv)
	r.drawParties(doc, tr, inv, taxInfo)
	y := r.drawItemsTable(doc, tr, inv)
	y = r.drawTotals(doc, tr, inv, taxInfo, y)
	r.drawNotesAndTerms(doc, tr, inv, y)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, model.NewRenderError("finalize", "failed to write document stream", err)
	}
	return buf.Bytes(), nil
}

func (r *PDF) drawHeader(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	doc.SetFont("Helvetica", "", 20)
	textCell(doc, pageMargin, 50, contentW, 20, "R", tr("INVOICE"))

	doc.SetFont("Helvetica", "", 10)
	textCell(doc, pageMargin, 80, contentW, 12, "R", tr(fmt.Sprintf("Invoice #: %s", inv.InvoiceNumber)))
	textCell(doc, pageMargin, 95, contentW, 12, "R", tr(fmt.Sprintf("Date: %s", inv.Date.Format("1/2/2006"))))
	if inv.DueDate != nil {
		textCell(doc, pageMargin, 110, contentW, 12, "R", tr(fmt.Sprintf("Due Date: %s", inv.DueDate.Format("1/2/2006"))))
	}
}

func (r *PDF) drawParties(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, taxInfo currency.TaxInfo) {
	drawParty(doc, tr, pageMargin, "From:", inv.From, taxInfo.TaxIDShortLabel)
	drawParty(doc, tr, partyColX, "Bill To:", inv.To, taxInfo.TaxIDShortLabel)
}

// drawParty renders one party column. The optional lines occupy fixed slots
// below the name and email, matching the reference layout.
func drawParty(doc *gofpdf.Fpdf, tr func(string) string, x float64, label string, p model.Party, taxLabel string) {
	doc.SetFont("Helvetica", "", 12)
	textCell(doc, x, partiesTop, 240, 14, "L", tr(label))

	doc.SetFont("Helvetica", "", 10)
	textCell(doc, x, partiesTop+20, 240, 12, "L", tr(p.Name))
	textCell(doc, x, partiesTop+35, 240, 12, "L", tr(p.Email))
	if p.Address != "" {
		textCell(doc, x, partiesTop+50, 240, 12, "L", tr(p.Address))
	}
	if p.Phone != "" {
		textCell(doc, x, partiesTop+65, 240, 12, "L", tr(p.Phone))
	}
	if p.TaxID != "" {
		textCell(doc, x, partiesTop+80, 240, 12, "L", tr(fmt.Sprintf("%s: %s", taxLabel, p.TaxID)))
	}
}

// drawItemsTable renders the 4-column table and returns the y position just
// below the last row. Rows sit at a fixed height per index; when a row would
// cross the bottom margin the table continues on a fresh page with the
// column header redrawn.
func (r *PDF) drawItemsTable(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) float64 {
	doc.SetFont("Helvetica", "", 10)

	y := drawTableHeader(doc, tr, tableTop)
	for _, item := range inv.Items {
		if y+tableRowH > pageHeight-pageMargin {
			doc.AddPage()
			y = drawTableHeader(doc, tr, pageMargin)
		}

		doc.Rect(pageMargin, y, contentW, tableRowH, "D")
		textCell(doc, colDescX, y+7, 285, 11, "L", tr(item.Description))
		textCell(doc, colQtyX, y+7, 45, 11, "L", tr(money.Quantity(item.Quantity)))
		textCell(doc, colPriceX, y+7, 75, 11, "L", tr(money.Format(inv.Currency, item.UnitPrice)))
		textCell(doc, colTotalX, y+7, 65, 11, "L", tr(money.Format(inv.Currency, item.LineTotal())))
		y += tableRowH
	}
	return y
}

func drawTableHeader(doc *gofpdf.Fpdf, tr func(string) string, top float64) float64 {
	doc.SetFillColor(240, 240, 240)
	doc.SetDrawColor(0, 0, 0)
	doc.Rect(pageMargin, top, contentW, tableRowH, "FD")
	textCell(doc, colDescX, top+7, 285, 11, "L", tr("Description"))
	textCell(doc, colQtyX, top+7, 45, 11, "L", tr("Qty"))
	textCell(doc, colPriceX, top+7, 75, 11, "L", tr("Unit Price"))
	textCell(doc, colTotalX, top+7, 65, 11, "L", tr("Total"))
	return top + tableRowH
}

// drawTotals renders the totals block below the table and returns its top y.
// The four lines occupy fixed slots: subtotal, discount (only when > 0), tax
// (only when the rate is > 0) and the emphasized grand total.
func (r *PDF) drawTotals(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, taxInfo currency.TaxInfo, tableBottom float64) float64 {
	top := tableBottom + 20
	if top+4*totalsLineH > pageHeight-pageMargin {
		doc.AddPage()
		top = pageMargin
	}

	doc.SetFont("Helvetica", "", 10)
	textCell(doc, 380, top, 95, 12, "L", tr("Subtotal:"))
	textCell(doc, colTotalX, top, 70, 12, "L", tr(money.Format(inv.Currency, inv.Subtotal)))

	if inv.Discount > 0 {
		textCell(doc, 380, top+totalsLineH, 95, 12, "L", tr("Discount:"))
		textCell(doc, colTotalX, top+totalsLineH, 70, 12, "L", tr(money.FormatNegated(inv.Currency, inv.Discount)))
	}

	if inv.TaxRate > 0 {
		label := fmt.Sprintf("%s (%s%%):", taxLabel(taxInfo), money.Rate(inv.TaxRate))
		textCell(doc, 380, top+2*totalsLineH, 95, 12, "L", tr(label))
		textCell(doc, colTotalX, top+2*totalsLineH, 70, 12, "L", tr(money.Format(inv.Currency, inv.TaxAmount)))
	}

	doc.SetFont("Helvetica", "B", 12)
	textCell(doc, 380, top+3*totalsLineH, 95, 14, "L", tr("Total:"))
	textCell(doc, colTotalX, top+3*totalsLineH, 70, 14, "L", tr(money.Format(inv.Currency, inv.Total)))

	return top
}

// taxLabel names the tax line. Currencies without a nationwide default rate
// (for example USD, where sales tax varies by state) get the generic "Tax"
// label; all others use their tax name from the lookup.
func taxLabel(info currency.TaxInfo) string {
	if info.DefaultRate == 0 {
		return "Tax"
	}
	return info.TaxName
}

func (r *PDF) drawNotesAndTerms(doc *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, totalsTop float64) {
	doc.SetFont("Helvetica", "", 10)

	if inv.Notes != "" {
		y := ensureRoom(doc, totalsTop+100, 2*lineH)
		textCell(doc, pageMargin, y, contentW, 12, "L", tr("Notes:"))
		doc.SetXY(pageMargin, y+15)
		doc.MultiCell(contentW, 12, tr(inv.Notes), "", "L", false)
	}

	if inv.Terms != "" {
		// The terms slot depends on whether notes sit above it.
		termsTop := totalsTop + 100
		if inv.Notes != "" {
			termsTop = totalsTop + 160
		}
		y := ensureRoom(doc, termsTop, 2*lineH)
		textCell(doc, pageMargin, y, contentW, 12, "L", tr("Terms & Conditions:"))
		doc.SetXY(pageMargin, y+15)
		doc.MultiCell(contentW, 12, tr(inv.Terms), "", "L", false)
	}
}

// ensureRoom starts a fresh page when a block of the given height would
// cross the bottom margin, returning the adjusted y position.
func ensureRoom(doc *gofpdf.Fpdf, y, height float64) float64 {
	if y+height > pageHeight-pageMargin {
		doc.AddPage()
		return pageMargin
	}
	return y
}

func textCell(doc *gofpdf.Fpdf, x, y, w, h float64, align, s string) {
	doc.SetXY(x, y)
	doc.CellFormat(w, h, s, "", 0, align, false, 0, "")
}
