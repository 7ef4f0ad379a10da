/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package netident works out which network interface carries a host's
// outbound traffic, whether it is wired or wireless, and, for wireless,
// the associated network name. Everything is derived from the text output
// of the platform's own tools; each platform supplies its own parsers
// behind InterfaceTextProvider and WirelessNameExtractor.
package netident

import (
	"context"
	"net/netip"

	"github.com/UnifyEM/netid/common/schema"
)

// InterfaceType is the media type of the interface that owns the local address
type InterfaceType int

const (
	Unknown InterfaceType = iota
	Wired
	Wireless
)

func (t InterfaceType) String() string {
	switch t {
	case Wired:
		return "Wired"
	case Wireless:
		return "Wireless"
	default:
		return "Unknown"
	}
}

// ReportValue returns the lower-case form used in schema.NetReport
func (t InterfaceType) ReportValue() string {
	switch t {
	case Wired:
		return schema.InterfaceWired
	case Wireless:
		return schema.InterfaceWireless
	default:
		return schema.InterfaceUnknown
	}
}

// InterfaceRecord is one {name, address} pair parsed from command output.
// Address is invalid when the listing carried no address for the interface.
type InterfaceRecord struct {
	Name    string
	Address netip.Addr
}

// Classification is the outcome of matching the local address against
// the platform's interface listing. The zero value means Unknown.
type Classification struct {
	Type   InterfaceType
	Device string // e.g. en0, wlan0
	Label  string // hardware port label where the platform has one, e.g. "Wi-Fi"
}

// Runner executes a command and returns its standard output.
// *runCmd.Runner satisfies it.
type Runner interface {
	Stdout(ctx context.Context, cmdAndArgs ...string) (string, error)
}

// InterfaceTextProvider finds and classifies the interface that owns local.
// Implementations return the zero Classification when local is invalid,
// when a command is unavailable, or when nothing matches.
type InterfaceTextProvider interface {
	Name() string
	Classify(ctx context.Context, local netip.Addr) Classification
}

// WirelessNameExtractor returns the network the wireless device is
// associated with, or false if there is none or it cannot be determined.
type WirelessNameExtractor interface {
	WirelessName(ctx context.Context, device string) (string, bool)
}
