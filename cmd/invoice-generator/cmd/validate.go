package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-generator/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice records",
	Long: `Validate one or more invoice records (JSON) without rendering.

Checks performed:
  - Sender and client names present
  - At least one line item
  - Every item has a description, a quantity > 0 and a unit price >= 0

All violations are reported, not just the first.

Examples:
  invoice-generator validate invoice.json
  invoice-generator validate drafts/*.json -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationResult holds the validation outcome for a single record
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".json")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no invoice records found to validate")
	}

	results := make([]*ValidationResult, 0, len(files))
	allValid := true

	for _, file := range files {
		result := validateFile(file)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	if err := outputValidationResults(os.Stdout, results); err != nil {
		return err
	}

	if !allValid {
		return fmt.Errorf("validation failed for some records")
	}
	return nil
}

func outputValidationResults(w io.Writer, results []*ValidationResult) error {
	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "csv":
		fmt.Fprintln(w, "file,valid,errors")
		for _, r := range results {
			fmt.Fprintf(w, "%s,%t,%s\n",
				escapeCSV(r.File), r.Valid, escapeCSV(strings.Join(r.Errors, "; ")))
		}
		return nil
	default:
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(w, "✓ %s: VALID\n", r.File)
			} else {
				fmt.Fprintf(w, "✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Fprintf(w, "  - %s\n", e)
				}
			}
		}
		return nil
	}
}

func validateFile(file string) *ValidationResult {
	result := &ValidationResult{
		File:   file,
		Errors: []string{},
	}

	data, err := os.ReadFile(file)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to read file: %v", err))
		return result
	}

	var draft model.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid invoice record: %v", err))
		return result
	}

	validation := model.Normalize(draft).Validate()
	result.Valid = validation.IsValid
	result.Errors = validation.Errors
	return result
}
