package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/bystrodel/backend/cmd/http"
	systemcmd "github.com/bystrodel/backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bystrodel",
	Short: "БыстроДел small-business services platform backend.",
	Long: `БыстроДел is the backend for a small-business services platform.
It takes orders and support requests from the public site, runs the client
portal with per-order and per-ticket chat, and feeds the admin dashboard
and Telegram notification bot.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
