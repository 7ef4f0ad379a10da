/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package report

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/netid/cli/display"
	"github.com/UnifyEM/netid/cli/global"
	"github.com/UnifyEM/netid/common/netident"
)

// Options are the report flags
type Options struct {
	JSON       bool
	NoPublicIP bool
}

func Register() *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:   "report",
		Short: "full network identity report",
		Long:  "report hostname, local and public IP address, interface type and Wi-Fi network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Execute(cmd.Context(), cmd.OutOrStdout(), global.Current, opts)
		},
	}
	AddFlags(cmd, &opts)
	return cmd
}

// AddFlags binds the report flags to cmd. The root command shares them.
func AddFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.NoPublicIP, "no-public-ip", false, "skip the public IP lookup")
}

// Execute collects and prints the report
func Execute(ctx context.Context, w io.Writer, s *global.Session, opts Options) error {
	if s == nil {
		return fmt.Errorf("no session")
	}
	return Print(ctx, w, s.Collector(!opts.NoPublicIP), opts)
}

// Print collects a report with c and writes it to w
func Print(ctx context.Context, w io.Writer, c *netident.Collector, opts Options) error {
	r := c.Collect(ctx)

	if opts.JSON {
		return global.Pretty(w, r)
	}

	display.Report(w, r, !opts.NoPublicIP, display.IsTerminal(w))
	return nil
}
