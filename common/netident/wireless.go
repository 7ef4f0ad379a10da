/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"bufio"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"howett.net/plist"
)

const currentNetworkMarker = "Current Network Information:"

// ParseCurrentNetwork extracts the associated network from the text form of
// `system_profiler SPAirPortDataType`. After the "Current Network
// Information:" line, the next non-blank line must end in a colon and
// holds the network name.
func ParseCurrentNetwork(text string) (string, bool) {
	seeking := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !seeking {
			if line == currentNetworkMarker {
				seeking = true
			}
			continue
		}

		if line == "" {
			continue
		}

		name, found := strings.CutSuffix(line, ":")
		if !found {
			return "", false
		}
		return normalizeName(name)
	}
	return "", false
}

// ParseActiveSSID extracts the network from `nmcli -t -f active,ssid dev wifi`.
// The first row whose active field is exactly "yes" wins.
func ParseActiveSSID(text string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		row := splitTerse(strings.TrimRight(scanner.Text(), "\r"))
		if len(row) < 2 || row[0] != "yes" {
			continue
		}
		return normalizeName(strings.Join(row[1:], ":"))
	}
	return "", false
}

// splitTerse splits an nmcli terse row on unescaped colons and removes the
// backslash escapes nmcli adds to ':' and '\' inside values
func splitTerse(line string) []string {
	var out []string
	var sb strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			i++
			sb.WriteByte(line[i])
		case c == ':':
			out = append(out, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	return append(out, sb.String())
}

type airPortReport struct {
	Items []struct {
		Interfaces []airPortInterface `plist:"spairport_airport_interfaces"`
	} `plist:"_items"`
}

type airPortInterface struct {
	Name    string `plist:"_name"`
	Current struct {
		Name string `plist:"_name"`
	} `plist:"spairport_current_network_information"`
}

// ParseAirPortPlist extracts the associated network from the XML form of
// `system_profiler SPAirPortDataType -xml`. The interface named device is
// preferred; otherwise the first interface with a current network is used.
func ParseAirPortPlist(data []byte, device string) (string, bool, error) {
	var reports []airPortReport
	if _, err := plist.Unmarshal(data, &reports); err != nil {
		return "", false, fmt.Errorf("plist decode: %w", err)
	}

	var fallback string
	for _, report := range reports {
		for _, item := range report.Items {
			for _, iface := range item.Interfaces {
				if iface.Current.Name == "" {
					continue
				}
				if device != "" && iface.Name == device {
					name, ok := normalizeName(iface.Current.Name)
					return name, ok, nil
				}
				if fallback == "" {
					fallback = iface.Current.Name
				}
			}
		}
	}

	name, ok := normalizeName(fallback)
	return name, ok, nil
}

// normalizeName trims a network name and converts it to NFC, since the
// macOS tools can emit decomposed Unicode
func normalizeName(name string) (string, bool) {
	name = norm.NFC.String(strings.TrimSpace(name))
	return name, name != ""
}
