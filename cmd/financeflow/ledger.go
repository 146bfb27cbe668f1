package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PierrunoYT/financeflow/internal/ledger"
	"github.com/PierrunoYT/financeflow/internal/tui"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Open the local transaction ledger",
		Long: `The ledger is a self-contained list of transactions persisted to a
local JSON file. It does not talk to the API server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := viper.GetString("ledger_dir")
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve home directory: %w", err)
				}
				dir = filepath.Join(home, ".financeflow")
			}

			store, err := ledger.Open(dir)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(tui.New(store), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().String("dir", "", "ledger directory (default $HOME/.financeflow)")
	_ = viper.BindPFlag("ledger_dir", cmd.Flags().Lookup("dir"))
	return cmd
}
