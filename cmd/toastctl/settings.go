package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"brew_console/internal/apiclient"
	"brew_console/internal/settings"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "Commit a controller setting through the console",
		Long: `Commit a controller setting through the console.

The console validates the value, forwards it to the controller and raises a
toast with the outcome. The stored value is printed afterwards.

Examples:
  toastctl set setpoint 66.5
  toastctl set duty-cycle 40`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[1], err)
			}

			ctx, cancel := opts.context(cmd)
			defer cancel()

			client := opts.client()
			if err := client.PutWithParams(ctx, "/settings/"+url.PathEscape(name), apiclient.QueryParams{"value": value}); err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}

			views, err := apiclient.GetJSON[[]settings.View](ctx, client, "/settings")
			if err != nil {
				return fmt.Errorf("read settings: %w", err)
			}
			for _, v := range views {
				if v.Key == name {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s%s\n", v.Label, strconv.FormatFloat(v.Value, 'f', -1, 64), v.Suffix)
					return nil
				}
			}
			return fmt.Errorf("unknown setting %q", name)
		},
	}
}
