// Command printctl prices and submits print shop orders from the terminal and
// lists recent orders straight from the database.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	server  string
	timeout time.Duration
	fs      afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:   "printctl",
		Short: "Print shop order tooling",
		Long: `Quote, submit and inspect print shop orders.

Available subcommands:
  quote  - Price a print, binding or plagiarism job
  submit - Upload files and place an order through the API
  orders - List recent orders from the database`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", "http://localhost:8080", "API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Operation timeout")

	cmd.AddCommand(newQuoteCmd(), newSubmitCmd(opts), newOrdersCmd())
	return cmd
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
