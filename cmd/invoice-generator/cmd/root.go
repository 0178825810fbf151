package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-generator",
	Short: "Generate invoice PDFs from structured invoice records",
	Long: `Invoice Generator turns JSON invoice records into downloadable PDF
documents: it fills defaults, computes subtotal, tax and total, and lays the
result out as a paginated document.

Examples:
  # Generate a PDF from an invoice record
  invoice-generator generate invoice.json

  # Validate records without rendering
  invoice-generator validate *.json

  # List supported currencies and their tax metadata
  invoice-generator currencies

  # Start the HTTP API
  invoice-generator serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, csv, table)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
