package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/model"
	"github.com/rezonia/invoice-generator/internal/money"
	"github.com/rezonia/invoice-generator/internal/render"
)

var outputDir string

var generateCmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate invoice PDFs from JSON records",
	Long: `Read one or more invoice records (JSON), fill defaults, compute totals
and render each valid record to invoice-<number>.pdf.

Records that fail validation are reported with the full list of violations
and produce no document.

Examples:
  invoice-generator generate invoice.json
  invoice-generator generate drafts/*.json -o out/
  invoice-generator generate invoice.json -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write PDF files to")
}

// GenerateResult holds the outcome of generating one record
type GenerateResult struct {
	File          string   `json:"file"`
	InvoiceNumber string   `json:"invoiceNumber,omitempty"`
	Total         string   `json:"total,omitempty"`
	Output        string   `json:"output,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".json")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no invoice records found")
	}

	printVerbose("Found %d records to generate\n", len(files))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := render.NewPDF()
	results := make([]*GenerateResult, 0, len(files))
	failed := false

	for _, file := range files {
		printVerbose("Generating: %s\n", file)

		result := generateFile(renderer, file)
		results = append(results, result)

		if len(result.Errors) > 0 {
			failed = true
			printVerbose("  Errors: %s\n", strings.Join(result.Errors, "; "))
		} else {
			printVerbose("  Wrote: %s\n", result.Output)
		}
	}

	if err := outputGenerateResults(os.Stdout, results); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("generation failed for some records")
	}
	return nil
}

func generateFile(renderer *render.PDF, file string) *GenerateResult {
	result := &GenerateResult{File: file}

	data, err := os.ReadFile(file)
	if err != nil {
		result.Errors = []string{fmt.Sprintf("failed to read file: %v", err)}
		return result
	}

	var draft model.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		result.Errors = []string{fmt.Sprintf("invalid invoice record: %v", err)}
		return result
	}

	inv := model.Normalize(draft)
	if validation := inv.Validate(); !validation.IsValid {
		result.Errors = validation.Errors
		return result
	}

	pdfBytes, err := renderer.Render(inv)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	outPath := filepath.Join(outputDir, render.Filename(inv))
	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		result.Errors = []string{fmt.Sprintf("failed to write PDF: %v", err)}
		return result
	}

	result.InvoiceNumber = inv.InvoiceNumber
	result.Total = money.Format(inv.Currency, inv.Total)
	result.Output = outPath
	return result
}

func outputGenerateResults(w io.Writer, results []*GenerateResult) error {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tNUMBER\tTOTAL\tOUTPUT")
		fmt.Fprintln(tw, "----\t------\t-----\t------")
		for _, r := range results {
			if len(r.Errors) > 0 {
				fmt.Fprintf(tw, "%s\tERROR: %s\t\t\n", r.File, strings.Join(r.Errors, "; "))
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.File, r.InvoiceNumber, r.Total, r.Output)
		}
		return tw.Flush()
	case "csv":
		fmt.Fprintln(w, "file,invoice_number,total,output,errors")
		for _, r := range results {
			fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
				escapeCSV(r.File), r.InvoiceNumber, escapeCSV(r.Total), escapeCSV(r.Output),
				escapeCSV(strings.Join(r.Errors, "; ")))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// collectFiles expands arguments into a file list, accepting glob patterns
// and directories, keeping only files with the given extension.
func collectFiles(args []string, ext string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
			continue
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if !info.IsDir() && strings.EqualFold(filepath.Ext(match), ext) {
				files = append(files, match)
			}
		}
	}

	return files, nil
}
