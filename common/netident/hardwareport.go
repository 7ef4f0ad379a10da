/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"bufio"
	"context"
	"net/netip"
	"strings"

	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
)

//
// macOS: networksetup/ipconfig for the interface, system_profiler for Wi-Fi
//

const (
	portPrefix   = "Hardware Port:"
	devicePrefix = "Device:"
)

// HardwarePorts classifies interfaces from `networksetup -listallhardwareports`
type HardwarePorts struct {
	runner Runner
	logger interfaces.Logger
}

func NewHardwarePorts(runner Runner, logger interfaces.Logger) *HardwarePorts {
	if logger == nil {
		logger = null.Logger()
	}
	return &HardwarePorts{runner: runner, logger: logger}
}

func (h *HardwarePorts) Name() string {
	return "networksetup"
}

// ListHardwarePorts returns the raw hardware port listing
func (h *HardwarePorts) ListHardwarePorts(ctx context.Context) (string, bool) {
	return capture(ctx, h.runner, h.logger, "networksetup", "-listallhardwareports")
}

// DeviceAddress returns the IPv4 address currently assigned to device
func (h *HardwarePorts) DeviceAddress(ctx context.Context, device string) (netip.Addr, bool) {
	out, ok := capture(ctx, h.runner, h.logger, "ipconfig", "getifaddr", device)
	if !ok {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(out))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// Classify implements InterfaceTextProvider
func (h *HardwarePorts) Classify(ctx context.Context, local netip.Addr) Classification {
	if !local.IsValid() {
		return Classification{}
	}

	text, ok := h.ListHardwarePorts(ctx)
	if !ok {
		return Classification{}
	}

	label, device, ok := MatchHardwarePort(text, local, func(device string) (netip.Addr, bool) {
		return h.DeviceAddress(ctx, device)
	})
	if !ok {
		h.logger.Info(1202, "no hardware port owns the local address",
			fields.NewFields(fields.NewField("local_ip", local.String())))
		return Classification{}
	}

	c := Classification{Type: PortType(label), Device: device, Label: label}
	h.logger.Debug(1203, "hardware port matched", fields.NewFields(
		fields.NewField("label", label),
		fields.NewField("device", device),
		fields.NewField("type", c.Type.String()),
	))
	return c
}

// MatchHardwarePort scans the block-structured port listing in order. At each
// "Device:" line the device address is looked up; the first device whose
// address equals local wins and scanning stops. The label returned is the
// most recent "Hardware Port:" seen before that device.
func MatchHardwarePort(text string, local netip.Addr, lookup func(device string) (netip.Addr, bool)) (label string, device string, ok bool) {
	if !local.IsValid() {
		return "", "", false
	}
	local = local.Unmap()

	var currentLabel string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if v, found := strings.CutPrefix(line, portPrefix); found {
			currentLabel = strings.TrimSpace(v)
			continue
		}

		v, found := strings.CutPrefix(line, devicePrefix)
		if !found {
			continue
		}

		dev := strings.TrimSpace(v)
		if dev == "" {
			continue
		}

		addr, assigned := lookup(dev)
		if assigned && addr == local {
			return currentLabel, dev, true
		}
	}
	return "", "", false
}

// PortType maps a hardware port label to an InterfaceType
func PortType(label string) InterfaceType {
	l := strings.ToLower(label)
	switch {
	case l == "":
		return Unknown
	case strings.Contains(l, "wi-fi"), strings.Contains(l, "wifi"),
		strings.Contains(l, "airport"), strings.Contains(l, "wireless"):
		return Wireless
	default:
		return Wired
	}
}

// WirelessName implements WirelessNameExtractor. The text report is tried
// first; the XML report is used when the text yields no name.
func (h *HardwarePorts) WirelessName(ctx context.Context, device string) (string, bool) {
	if text, ok := capture(ctx, h.runner, h.logger, "system_profiler", "SPAirPortDataType"); ok {
		if name, found := ParseCurrentNetwork(text); found {
			return name, true
		}
	}

	xml, ok := capture(ctx, h.runner, h.logger, "system_profiler", "SPAirPortDataType", "-xml")
	if !ok {
		return "", false
	}

	name, found, err := ParseAirPortPlist([]byte(xml), device)
	if err != nil {
		h.logger.Warning(1204, "unable to decode system_profiler XML",
			fields.NewFields(fields.NewField("error", err.Error())))
		return "", false
	}
	return name, found
}
