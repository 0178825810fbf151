// Package currency maps ISO-like currency codes to tax metadata: how the
// tax identifier is labelled, what the tax itself is called, and the default
// rate applied when a caller does not supply one.
package currency

import "sort"

// TaxInfo is the tax metadata attached to a currency code.
type TaxInfo struct {
	TaxIDLabel      string  `json:"taxIdLabel"`
	TaxIDShortLabel string  `json:"taxIdShortLabel"`
	TaxName         string  `json:"taxName"`
	DefaultRate     float64 `json:"defaultTaxRate"`
}

// Fallback is returned for unknown currency codes.
var Fallback = TaxInfo{
	TaxIDLabel:      "Tax ID",
	TaxIDShortLabel: "Tax ID",
	TaxName:         "Tax",
	DefaultRate:     0,
}

var taxInfos = map[string]TaxInfo{
	"AUD": {"Australian Business Number", "ABN", "GST", 10},
	"USD": {"Employer Identification Number", "EIN", "Sales Tax", 0},
	"CAD": {"Business Number", "BN", "GST/HST", 5},
	"GBP": {"VAT Registration Number", "VAT No.", "VAT", 20},
	"EUR": {"VAT Identification Number", "VAT No.", "VAT", 19},
	"NZD": {"New Zealand Business Number", "NZBN", "GST", 15},
	"SGD": {"Goods and Services Tax Registration Number", "GST Reg No.", "GST", 9},
	"INR": {"Goods and Services Tax Identification Number", "GSTIN", "GST", 18},
	"JPY": {"Corporate Number", "CN", "Consumption Tax", 10},
	"CNY": {"Taxpayer Identification Number", "TIN", "VAT", 13},
	"CHF": {"VAT Registration Number", "VAT No.", "VAT", 8.1},
	"HKD": {"Business Registration Number", "BR No.", "Tax", 0},
	"AED": {"Tax Registration Number", "TRN", "VAT", 5},
	"SAR": {"Tax Identification Number", "TIN", "VAT", 15},
	"MYR": {"Sales and Service Tax Number", "SST No.", "SST", 10},
	"THB": {"Tax Identification Number", "TIN", "VAT", 7},
	"IDR": {"Taxpayer Identification Number", "NPWP", "PPN (VAT)", 10},
	"PHP": {"Tax Identification Number", "TIN", "VAT", 12},
	"VND": {"Tax Code", "MST", "VAT", 10},
	"KRW": {"Business Registration Number", "BRN", "VAT", 10},
	"NOK": {"VAT Registration Number", "VAT No.", "VAT", 25},
	"SEK": {"VAT Registration Number", "VAT No.", "VAT", 25},
	"DKK": {"VAT Registration Number", "CVR", "VAT", 25},
	"PLN": {"VAT Identification Number", "NIP", "VAT", 23},
	"CZK": {"VAT Identification Number", "DIČ", "VAT", 21},
	"ZAR": {"VAT Registration Number", "VAT No.", "VAT", 15},
	"BRL": {"Taxpayer Registration Number", "CNPJ", "ICMS", 17},
	"MXN": {"Tax Identification Number", "RFC", "IVA", 16},
	"TRY": {"Tax Identification Number", "VKN", "KDV", 18},
	"RUB": {"Taxpayer Identification Number", "INN", "VAT", 20},
}

// Lookup returns the tax metadata for a currency code. Unknown codes get the
// generic Fallback record, so Lookup is total.
func Lookup(code string) TaxInfo {
	if info, ok := taxInfos[code]; ok {
		return info
	}
	return Fallback
}

// Known reports whether the code has a dedicated metadata record.
func Known(code string) bool {
	_, ok := taxInfos[code]
	return ok
}

// Codes returns all known currency codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(taxInfos))
	for code := range taxInfos {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
