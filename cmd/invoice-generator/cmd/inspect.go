package cmd

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [files...]",
	Short: "Inspect generated PDF documents",
	Long: `Display structural information about PDF files: size, page count and
whether the document passes PDF validation.

Useful for checking the output of the generate command.

Examples:
  invoice-generator inspect invoice-INV-202608-0042.pdf
  invoice-generator inspect out/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".pdf")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found")
	}

	for _, file := range files {
		printDocumentInfo(file)
		fmt.Println()
	}

	return nil
}

func printDocumentInfo(file string) {
	fmt.Printf("File: %s\n", file)

	info, err := os.Stat(file)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}
	fmt.Printf("  Size: %d bytes\n", info.Size())
	fmt.Printf("  Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))

	if err := api.ValidateFile(file, nil); err != nil {
		fmt.Printf("  Valid: no (%v)\n", err)
		return
	}
	fmt.Printf("  Valid: yes\n")

	pages, err := api.PageCountFile(file)
	if err != nil {
		fmt.Printf("  Pages: unknown (%v)\n", err)
		return
	}
	fmt.Printf("  Pages: %d\n", pages)
}
