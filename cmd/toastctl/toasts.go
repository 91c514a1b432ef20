package main

import (
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"brew_console/internal/apiclient"
	"brew_console/internal/model"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live toasts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			toasts, err := apiclient.GetJSON[[]model.Toast](ctx, opts.client(), "/toasts")
			if err != nil {
				return fmt.Errorf("list toasts: %w", err)
			}
			return writeToasts(cmd.OutOrStdout(), toasts)
		},
	}
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show toasts shown so far, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			endpoint := fmt.Sprintf("/toasts/history?limit=%d", limit)
			history, err := apiclient.GetJSON[[]model.HistoryEntry](ctx, opts.client(), endpoint)
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}
			return writeHistory(cmd.OutOrStdout(), history)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries")
	return cmd
}

func newDismissCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>...",
		Short: "Dismiss toasts by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			client := opts.client()
			for _, id := range args {
				if err := client.Delete(ctx, "/toasts/"+url.PathEscape(id)); err != nil {
					return fmt.Errorf("dismiss %s: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "dismissed %s\n", id)
			}
			return nil
		},
	}
}

func writeToasts(out io.Writer, toasts []model.Toast) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTYLE\tTIMEOUT\tCREATED\tTEXT")
	for _, t := range toasts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, styleName(t.Style), timeoutText(t.TimeoutMS), t.CreatedAt.Format(time.TimeOnly), t.Text)
	}
	return w.Flush()
}

func writeHistory(out io.Writer, history []model.HistoryEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tID\tSTYLE\tCREATED\tTEXT")
	for _, e := range history {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.Seq, e.ToastID, styleName(e.Style), e.CreatedAt.Format(time.DateTime), e.Text)
	}
	return w.Flush()
}

func styleName(style string) string {
	if style == "" {
		return "neutral"
	}
	return style
}

func timeoutText(ms *int64) string {
	if ms == nil {
		return "-"
	}
	return (time.Duration(*ms) * time.Millisecond).String()
}
