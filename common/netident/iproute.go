/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"bufio"
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
	"github.com/UnifyEM/netid/common/schema"
)

//
// Linux: `ip -o addr show` for the interface, sysfs for the media type,
// nmcli (or iwgetid) for the network name
//

// IPRoute classifies interfaces from the one-line-per-address iproute2 listing
type IPRoute struct {
	runner Runner
	sysfs  string
	logger interfaces.Logger
}

// NewIPRoute returns an IPRoute. sysfs is normally /sys/class/net.
func NewIPRoute(runner Runner, sysfs string, logger interfaces.Logger) *IPRoute {
	if sysfs == "" {
		sysfs = schema.DefaultSysfsNet
	}
	if logger == nil {
		logger = null.Logger()
	}
	return &IPRoute{runner: runner, sysfs: sysfs, logger: logger}
}

func (p *IPRoute) Name() string {
	return "iproute2"
}

// ListAddresses returns the raw `ip -o addr show` output
func (p *IPRoute) ListAddresses(ctx context.Context) (string, bool) {
	return capture(ctx, p.runner, p.logger, "ip", "-o", "addr", "show")
}

// IsWireless reports whether <sysfs>/<iface>/wireless exists
func (p *IPRoute) IsWireless(iface string) bool {
	if iface == "" || iface == "." || iface == ".." || strings.ContainsAny(iface, `/\`) {
		return false
	}
	_, err := os.Stat(filepath.Join(p.sysfs, iface, "wireless"))
	return err == nil
}

// Classify implements InterfaceTextProvider
func (p *IPRoute) Classify(ctx context.Context, local netip.Addr) Classification {
	if !local.IsValid() {
		return Classification{}
	}

	text, ok := p.ListAddresses(ctx)
	if !ok {
		return Classification{}
	}

	record, ok := MatchAddressLine(text, local)
	if !ok {
		p.logger.Info(1202, "no interface owns the local address",
			fields.NewFields(fields.NewField("local_ip", local.String())))
		return Classification{}
	}

	c := Classification{Type: Wired, Device: record.Name}
	if p.IsWireless(record.Name) {
		c.Type = Wireless
	}

	p.logger.Debug(1203, "interface matched", fields.NewFields(
		fields.NewField("device", c.Device),
		fields.NewField("type", c.Type.String()),
	))
	return c
}

// MatchAddressLine returns the first line, in output order, whose address
// equals local. Addresses are compared whole after the prefix length is
// removed, so 192.168.1.1 never matches 192.168.1.10/24.
func MatchAddressLine(text string, local netip.Addr) (InterfaceRecord, bool) {
	if !local.IsValid() {
		return InterfaceRecord{}, false
	}
	local = local.Unmap()

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		record, ok := ParseAddressLine(scanner.Text())
		if !ok || !record.Address.IsValid() {
			continue
		}
		if record.Address == local {
			return record, true
		}
	}
	return InterfaceRecord{}, false
}

// ParseAddressLine parses one line of `ip -o addr show`:
//
//	3: wlan0    inet 192.168.1.50/24 brd 192.168.1.255 scope global dynamic wlan0\ ...
//
// The interface name is the second field with any "@peer" suffix removed.
// The address is the field after "inet" or "inet6". A line with a name but
// no address yields a record with an invalid Address.
func ParseAddressLine(line string) (InterfaceRecord, bool) {
	f := strings.Fields(line)
	if len(f) < 2 || !strings.HasSuffix(f[0], ":") {
		return InterfaceRecord{}, false
	}

	name := strings.TrimSuffix(f[1], ":")
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	if name == "" {
		return InterfaceRecord{}, false
	}

	record := InterfaceRecord{Name: name}
	for i := 2; i < len(f)-1; i++ {
		if f[i] != "inet" && f[i] != "inet6" {
			continue
		}
		addr, _, _ := strings.Cut(f[i+1], "/")
		if ip, err := netip.ParseAddr(addr); err == nil {
			record.Address = ip.Unmap()
		}
		break
	}
	return record, true
}

// WirelessName implements WirelessNameExtractor using NetworkManager, and
// wireless-tools when NetworkManager has no answer
func (p *IPRoute) WirelessName(ctx context.Context, device string) (string, bool) {
	if out, ok := capture(ctx, p.runner, p.logger, "nmcli", "-t", "-f", "active,ssid", "dev", "wifi"); ok {
		if name, found := ParseActiveSSID(out); found {
			return name, true
		}
	}

	args := []string{"iwgetid", "-r"}
	if device != "" {
		args = append(args, device)
	}
	out, ok := capture(ctx, p.runner, p.logger, args...)
	if !ok {
		return "", false
	}
	return normalizeName(out)
}
