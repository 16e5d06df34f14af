package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/xrechnung/internal/config"
)

var buyersConfigPath string

var buyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "List the buyers in a settings file",
	Long: `List the buyer names configured in a settings file. Any of them can
be passed to 'generate --buyer'.

Examples:
  xrechnung buyers -c config.toml`,
	RunE: runBuyers,
}

func init() {
	rootCmd.AddCommand(buyersCmd)

	buyersCmd.Flags().StringVarP(&buyersConfigPath, "config", "c", "", "Settings file with supplier and buyer data")
	_ = buyersCmd.MarkFlagRequired("config")
}

func runBuyers(cmd *cobra.Command, args []string) error {
	names, err := config.BuyerNames(buyersConfigPath)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return fmt.Errorf("no buyers configured in %s", buyersConfigPath)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
