/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package iftype

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/netid/cli/display"
	"github.com/UnifyEM/netid/cli/global"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "type",
		Short: "network interface type",
		Long:  "report whether the interface carrying outbound traffic is wired or wireless",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if global.Current == nil {
				return fmt.Errorf("no session")
			}
			_, c := global.Current.Collector(false).Classify(cmd.Context())
			display.Classification(cmd.OutOrStdout(), c)
			return nil
		},
	}
}
