package cmd

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rezonia/xrechnung/internal/model"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "xrechnung",
	Short: "Generate XRechnung (EN 16931) UBL invoices",
	Long: `xrechnung is a CLI tool for creating electronic invoices in the UBL
dialect of the German XRechnung standard.

The tool turns supplier and buyer master data (TOML config), an issue date,
and a CSV file of billable hours into a standards-conformant XML invoice
that public-sector e-invoicing portals accept.

Examples:
  # Generate an invoice
  xrechnung generate -i 2025-001 -c config.toml -b "Client Company" \
      -d 2025-01-31 -l hours.csv -o invoice.xml

  # Check a generated invoice
  xrechnung validate invoice.xml

  # List the buyers configured in a settings file
  xrechnung buyers -c config.toml`,
	Version: version,
}

// Exit codes per failure kind, for callers scripting the tool.
const (
	exitFailure       = 1
	exitInvalidInput  = 2
	exitMissingField  = 3
	exitDateOverflow  = 4
	exitEncodingError = 5
)

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps a failure to the process exit status documented in the
// command help. Unrecognized errors report the generic failure code.
func ExitCode(err error) int {
	var (
		inputErr    *model.InputError
		missingErr  *model.MissingFieldError
		overflowErr *model.DateOverflowError
		encodingErr *model.EncodingError
	)

	switch {
	case errors.As(err, &inputErr):
		return exitInvalidInput
	case errors.As(err, &missingErr):
		return exitMissingField
	case errors.As(err, &overflowErr):
		return exitDateOverflow
	case errors.As(err, &encodingErr):
		return exitEncodingError
	default:
		return exitFailure
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
