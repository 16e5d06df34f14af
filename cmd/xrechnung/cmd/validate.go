package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/xrechnung/internal/ubl"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check generated invoice files",
	Long: `Check one or more generated invoice files for the rejections an
e-invoicing portal catches first.

Checks performed:
  - Required elements present (invoice number, dates, parties, IBAN)
  - Totals consistency (net + tax = gross, line amounts sum to the net total)
  - At least one invoice line

Examples:
  xrechnung validate invoice.xml
  xrechnung validate out/*.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	allValid := true

	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", file, err)
			allValid = false
			continue
		}

		result, err := ubl.CheckDocument(data)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", file, err)
			allValid = false
			continue
		}

		if result.Valid {
			fmt.Printf("✓ %s: VALID\n", file)
		} else {
			fmt.Printf("✗ %s: INVALID\n", file)
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e)
			}
			allValid = false
		}
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}
