/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportFormatText = "text"
	ReportFormatJSON = "json"
)

// Interface types as they appear in NetReport.InterfaceType
const (
	InterfaceUnknown  = "unknown"
	InterfaceWired    = "wired"
	InterfaceWireless = "wireless"
)

// NetReport is the result of a single run. Fields that could not be
// resolved are left empty and omitted from JSON.
type NetReport struct {
	ReportID        string `json:"report_id"`
	Collected       string `json:"collected"`
	Platform        string `json:"platform"`
	Hostname        string `json:"hostname,omitempty"`
	LocalIP         string `json:"local_ip,omitempty"`
	PublicIP        string `json:"public_ip,omitempty"`
	InterfaceType   string `json:"interface_type"`
	InterfaceLabel  string `json:"interface_label,omitempty"`
	Interface       string `json:"interface,omitempty"`
	WirelessNetwork string `json:"wireless_network,omitempty"`
}

// NewNetReport returns a report stamped with a fresh id and time
func NewNetReport(platform string) NetReport {
	return NetReport{
		ReportID:      uuid.NewString(),
		Collected:     time.Now().Format(time.RFC3339),
		Platform:      platform,
		InterfaceType: InterfaceUnknown,
	}
}

// ToMap flattens the report for logging
func (r NetReport) ToMap() map[string]string {
	return map[string]string{
		"report_id":        r.ReportID,
		"platform":         r.Platform,
		"hostname":         r.Hostname,
		"local_ip":         r.LocalIP,
		"public_ip":        r.PublicIP,
		"interface_type":   r.InterfaceType,
		"interface_label":  r.InterfaceLabel,
		"interface":        r.Interface,
		"wireless_network": r.WirelessNetwork,
	}
}
