package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/currency"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported currencies and their tax metadata",
	Long: `List every currency code with a dedicated tax metadata record: tax
identifier labels, tax name and the default tax rate applied when an invoice
does not specify one. Unknown codes fall back to a generic record.

Examples:
  invoice-generator currencies
  invoice-generator currencies -f table`,
	RunE: runCurrencies,
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}

type currencyRow struct {
	Code string `json:"code"`
	currency.TaxInfo
}

func runCurrencies(cmd *cobra.Command, args []string) error {
	rows := make([]currencyRow, 0)
	for _, code := range currency.Codes() {
		rows = append(rows, currencyRow{Code: code, TaxInfo: currency.Lookup(code)})
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tTAX\tDEFAULT RATE\tTAX ID LABEL")
		fmt.Fprintln(tw, "----\t---\t------------\t------------")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%g%%\t%s\n", r.Code, r.TaxName, r.DefaultRate, r.TaxIDShortLabel)
		}
		return tw.Flush()
	case "csv":
		fmt.Fprintln(os.Stdout, "code,tax_name,default_rate,tax_id_label,tax_id_short_label")
		for _, r := range rows {
			fmt.Fprintf(os.Stdout, "%s,%s,%g,%s,%s\n",
				r.Code, escapeCSV(r.TaxName), r.DefaultRate, escapeCSV(r.TaxIDLabel), escapeCSV(r.TaxIDShortLabel))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func escapeCSV(s string) string {
	if strings.Contains(s, ",") || strings.Contains(s, "\"") || strings.Contains(s, "\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
