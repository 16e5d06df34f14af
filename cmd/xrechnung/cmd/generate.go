package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/xrechnung/internal/config"
	"github.com/rezonia/xrechnung/internal/hours"
	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/pkg/xrechnunglib"
)

var (
	invoiceID  string
	configPath string
	buyerName  string
	issueDate  string
	hoursPath  string
	outputPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an XRechnung invoice",
	Long: `Generate a UBL invoice from a settings file and a CSV file of hours.

The settings file (TOML) provides the supplier, the available buyers, the
currency and the VAT percentage. The CSV file lists the billable hours with
the columns date, name, quantity, hourly_rate (the date may be empty).

The billing period starts on the date of the first invoice line, or on the
first day of the issue month when the lines carry no dates, and ends on the
issue date.

Examples:
  xrechnung generate -i 2025-001 -c config.toml -b "Client Company" \
      -d 2025-01-31 -l hours.csv -o invoice.xml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&invoiceID, "invoice-id", "i", "", "Unique number of the invoice")
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file with supplier and buyer data")
	generateCmd.Flags().StringVarP(&buyerName, "buyer", "b", "", "Name of the buyer to invoice")
	generateCmd.Flags().StringVarP(&issueDate, "issue-date", "d", "", "Issue date of the invoice (YYYY-MM-DD)")
	generateCmd.Flags().StringVarP(&hoursPath, "hours", "l", "", "CSV file with the invoice lines")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output XML file")

	for _, flag := range []string{"invoice-id", "config", "buyer", "issue-date", "hours", "output"} {
		_ = generateCmd.MarkFlagRequired(flag)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	issue, err := time.Parse(model.DateFormat, issueDate)
	if err != nil {
		return model.NewInputError("issue-date", issueDate, "must be an ISO 8601 date (YYYY-MM-DD)")
	}

	cfg, err := config.Load(configPath, buyerName)
	if err != nil {
		return err
	}
	log.Debug().Str("supplier", cfg.Supplier.Name).Str("buyer", cfg.Buyer.Name).Msg("loaded configuration")

	items, err := hours.ReadFile(hoursPath)
	if err != nil {
		return err
	}
	log.Debug().Int("lines", len(items)).Msg("read invoice hours")

	period, err := billingPeriod(issue, items)
	if err != nil {
		return err
	}

	bill, err := model.NewBill(invoiceID, cfg.Currency, cfg.VATPercent, issue, &period)
	if err != nil {
		return err
	}

	xmlBytes, err := xrechnunglib.Generate(cfg.Supplier, cfg.Buyer, bill, items)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, xmlBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Info().Str("output", outputPath).Int("bytes", len(xmlBytes)).Msg("invoice written")
	return nil
}

// billingPeriod spans from the first dated invoice line (or the first day of
// the issue month when no line carries a date) to the issue date.
func billingPeriod(issue time.Time, items []model.HoursItem) (model.Period, error) {
	start := time.Date(issue.Year(), issue.Month(), 1, 0, 0, 0, 0, issue.Location())
	if len(items) > 0 && items[0].Date != nil {
		start = *items[0].Date
	}
	return model.NewPeriod(start, issue)
}
