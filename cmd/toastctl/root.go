package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"brew_console/internal/apiclient"
)

const defaultServer = "http://localhost:8080"

type rootOptions struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "toastctl",
		Short:         "Inspect and control toasts on a console server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("BREW_CONSOLE_URL")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server,
		"Console server base URL (env BREW_CONSOLE_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second,
		"Request timeout")

	cmd.AddCommand(
		newListCmd(opts),
		newHistoryCmd(opts),
		newDismissCmd(opts),
		newSetCmd(opts),
	)
	return cmd
}

func (o *rootOptions) client() *apiclient.Client {
	return apiclient.New(o.server)
}

func (o *rootOptions) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}
