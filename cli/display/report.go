/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/UnifyEM/netid/common/netident"
	"github.com/UnifyEM/netid/common/schema"
)

const (
	noHostname      = "Could not retrieve hostname"
	noLocalIP       = "Could not retrieve local IP address"
	noPublicIP      = "Could not retrieve public IP address"
	noType          = "Could not determine network type"
	noWireless      = "Not connected to Wi-Fi or unavailable"
	skippedPublicIP = "Public IP Address: not requested"
)

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Report writes one line per field, using a fallback line for anything that
// could not be determined. The Wi-Fi line only appears for wireless
// interfaces. publicIP is false when the lookup was skipped.
func Report(w io.Writer, r schema.NetReport, publicIP bool, heading bool) {
	var lines []string

	if heading {
		title := fmt.Sprintf("Network identity (%s)", r.Platform)
		lines = append(lines, title, strings.Repeat("-", len(title)))
	}

	lines = append(lines, valueOr("Hostname", r.Hostname, noHostname))
	lines = append(lines, valueOr("Local IP Address", r.LocalIP, noLocalIP))

	if publicIP {
		lines = append(lines, valueOr("Public IP Address", r.PublicIP, noPublicIP))
	} else {
		lines = append(lines, skippedPublicIP)
	}

	lines = append(lines, typeLine(r.InterfaceType, r.InterfaceLabel, r.Interface))

	if r.InterfaceType == schema.InterfaceWireless {
		lines = append(lines, valueOr("Wi-Fi Network", r.WirelessNetwork, noWireless))
	}

	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}

// Classification writes the network type line for the type subcommand
func Classification(w io.Writer, c netident.Classification) {
	_, _ = fmt.Fprintln(w, typeLine(c.Type.ReportValue(), c.Label, c.Device))
}

// WirelessNetwork writes the Wi-Fi line for the wifi subcommand
func WirelessNetwork(w io.Writer, name string, ok bool) {
	if !ok {
		_, _ = fmt.Fprintln(w, noWireless)
		return
	}
	_, _ = fmt.Fprintf(w, "Wi-Fi Network: %s\n", name)
}

func valueOr(label, value, fallback string) string {
	if value == "" {
		return fallback
	}
	return label + ": " + value
}

// typeLine renders e.g. "Network Type: Wireless (Wi-Fi, en1)"
func typeLine(interfaceType, label, device string) string {
	var name string
	switch interfaceType {
	case schema.InterfaceWired:
		name = "Wired"
	case schema.InterfaceWireless:
		name = "Wireless"
	default:
		return noType
	}

	var detail []string
	for _, s := range []string{label, device} {
		if s != "" {
			detail = append(detail, s)
		}
	}
	if len(detail) == 0 {
		return "Network Type: " + name
	}
	return fmt.Sprintf("Network Type: %s (%s)", name, strings.Join(detail, ", "))
}
