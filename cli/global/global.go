/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/UnifyEM/netid/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "netid"
	Description     = "host network identity reporter"
	LongDescription = "report hostname, local and public IP address, interface type and Wi-Fi network"
	Copyright       = "Copyright (c) 2024-2026 Tenebris Technologies Inc."
	EnvPrefix       = "NETID_"
	EnvFile         = ".netid"
	ConfigFile      = ".netid.json"
	SystemConfig    = "/etc/netid.json"
)
