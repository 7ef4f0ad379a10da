/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"github.com/UnifyEM/netid/common/interfaces"
)

const (
	ConfigNetSet          = "netid"
	ConfigCommandTimeout  = "command_timeout"
	ConfigHTTPTimeout     = "http_timeout"
	ConfigPublicIPURL     = "public_ip_url"
	ConfigPublicIPDNS     = "public_ip_dns"
	ConfigProbeAddress    = "probe_address"
	ConfigSysfsNet        = "sysfs_net"
	ConfigLogFile         = "log_file"
	ConfigLogRetention    = "log_retention"
	ConfigDebug           = "log_debug"
	DefaultPublicIPURL    = "https://api.ipify.org"
	DefaultProbeAddress   = "8.8.8.8:80"
	DefaultSysfsNet       = "/sys/class/net"
	DefaultCommandTimeout = 5
	DefaultHTTPTimeout    = 10
)

// SetNetDefaults makes sure the set exists and applies defaults and constraints
func SetNetDefaults(c interfaces.Config) interfaces.Parameters {
	s := c.NewSet(ConfigNetSet)
	s.SetConstraint(ConfigCommandTimeout, 1, 300, DefaultCommandTimeout)
	s.SetConstraint(ConfigHTTPTimeout, 1, 300, DefaultHTTPTimeout)
	s.SetConstraint(ConfigPublicIPURL, 0, 0, DefaultPublicIPURL)
	s.SetConstraint(ConfigPublicIPDNS, 0, 0, true)
	s.SetConstraint(ConfigProbeAddress, 0, 0, DefaultProbeAddress)
	s.SetConstraint(ConfigSysfsNet, 0, 0, DefaultSysfsNet)
	s.SetConstraint(ConfigLogFile, 0, 0, "")
	s.SetConstraint(ConfigLogRetention, 1, 365, 7)
	s.SetConstraint(ConfigDebug, 0, 0, false)
	return s
}
