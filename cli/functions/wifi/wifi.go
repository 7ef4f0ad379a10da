/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package wifi

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/netid/cli/display"
	"github.com/UnifyEM/netid/cli/global"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "wifi",
		Short: "Wi-Fi network name",
		Long:  "report the Wi-Fi network the active interface is associated with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if global.Current == nil {
				return fmt.Errorf("no session")
			}
			_, name, ok := global.Current.Collector(false).WirelessNetwork(cmd.Context())
			display.WirelessNetwork(cmd.OutOrStdout(), name, ok)
			return nil
		},
	}
}
