package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "financeflow",
	Short: "Personal finance tracker",
	Long: `FinanceFlow tracks income and expenses.

"serve" runs the REST API over categories, transactions and budgets;
"ledger" opens the local terminal ledger.`,
}

func init() {
	viper.SetEnvPrefix("FINANCEFLOW")
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(ledgerCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
