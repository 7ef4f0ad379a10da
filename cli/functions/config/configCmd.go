/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package configCmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/netid/cli/global"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "configuration commands",
		Long:  "show the effective configuration or write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required")
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "show effective configuration",
		Long:  "show the configuration after defaults, file, environment and flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if global.Current == nil {
				return fmt.Errorf("no session")
			}
			out, err := global.Current.Config.Dump()
			if err != nil {
				return err
			}
			if file := global.Current.Config.File(); file != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "# loaded from %s\n", file)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write default configuration",
		Long:  "write a configuration file holding the defaults (~/" + global.ConfigFile + " if no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			written, err := global.InitConfig(file, force)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", written)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}
