/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
)

const ipAddrShow = `1: lo    inet 127.0.0.1/8 scope host lo\       valid_lft forever preferred_lft forever
1: lo    inet6 ::1/128 scope host \       valid_lft forever preferred_lft forever
2: eth0    inet 192.168.1.10/24 brd 192.168.1.255 scope global eth0\       valid_lft forever preferred_lft forever
3: wlan0    inet 192.168.1.50/24 brd 192.168.1.255 scope global dynamic wlan0\       valid_lft 84000sec preferred_lft 84000sec
4: veth1a2b@if5    inet 172.17.0.1/16 brd 172.17.255.255 scope global veth1a2b\       valid_lft forever preferred_lft forever
`

// sysfsWith creates a fake /sys/class/net with a wireless entry for each
// name in wireless and a plain entry for each name in wired
func sysfsWith(t *testing.T, wired []string, wireless []string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range wired {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range wireless {
		if err := os.MkdirAll(filepath.Join(root, name, "wireless"), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestParseAddressLine(t *testing.T) {
	tests := []struct {
		line string
		name string
		addr string
		ok   bool
	}{
		{"2: eth0    inet 192.168.1.10/24 brd 192.168.1.255 scope global eth0", "eth0", "192.168.1.10", true},
		{"4: veth1a2b@if5    inet 172.17.0.1/16 scope global veth1a2b", "veth1a2b", "172.17.0.1", true},
		{"1: lo    inet6 ::1/128 scope host", "lo", "::1", true},
		{"5: tun0    link/none", "tun0", "", true},
		{"eth0 inet 10.0.0.1/8", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		record, ok := ParseAddressLine(tt.line)
		if ok != tt.ok || record.Name != tt.name {
			t.Errorf("ParseAddressLine(%q) = %+v, %v", tt.line, record, ok)
			continue
		}
		if tt.addr == "" {
			if record.Address.IsValid() {
				t.Errorf("ParseAddressLine(%q) address = %s, want none", tt.line, record.Address)
			}
			continue
		}
		if record.Address != netip.MustParseAddr(tt.addr) {
			t.Errorf("ParseAddressLine(%q) address = %s, want %s", tt.line, record.Address, tt.addr)
		}
	}
}

func TestMatchAddressLine(t *testing.T) {
	record, ok := MatchAddressLine(ipAddrShow, netip.MustParseAddr("192.168.1.50"))
	if !ok || record.Name != "wlan0" {
		t.Errorf("MatchAddressLine() = %+v, %v, want wlan0", record, ok)
	}

	record, ok = MatchAddressLine(ipAddrShow, netip.MustParseAddr("172.17.0.1"))
	if !ok || record.Name != "veth1a2b" {
		t.Errorf("MatchAddressLine() = %+v, %v, want veth1a2b", record, ok)
	}
}

func TestMatchAddressLinePrefixCollision(t *testing.T) {
	// 192.168.1.1 is a prefix of 192.168.1.10 and 192.168.1.255
	if record, ok := MatchAddressLine(ipAddrShow, netip.MustParseAddr("192.168.1.1")); ok {
		t.Errorf("MatchAddressLine() matched %+v", record)
	}
	// the broadcast address is not an interface address
	if record, ok := MatchAddressLine(ipAddrShow, netip.MustParseAddr("192.168.1.255")); ok {
		t.Errorf("MatchAddressLine() matched %+v", record)
	}
}

func TestIsWireless(t *testing.T) {
	p := NewIPRoute(nil, sysfsWith(t, []string{"eth0"}, []string{"wlan0"}), nil)

	if !p.IsWireless("wlan0") {
		t.Error("wlan0 should be wireless")
	}
	for _, name := range []string{"eth0", "missing", "", ".", "..", "../wlan0", `wlan0\x`} {
		if p.IsWireless(name) {
			t.Errorf("IsWireless(%q) = true", name)
		}
	}
}

func TestIPRouteClassify(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"ip -o addr show": ipAddrShow,
	})
	p := NewIPRoute(runner, sysfsWith(t, []string{"eth0", "lo"}, []string{"wlan0"}), nil)

	c := p.Classify(context.Background(), netip.MustParseAddr("192.168.1.50"))
	if c.Type != Wireless || c.Device != "wlan0" {
		t.Errorf("Classify(192.168.1.50) = %+v", c)
	}

	c = p.Classify(context.Background(), netip.MustParseAddr("192.168.1.10"))
	if c.Type != Wired || c.Device != "eth0" {
		t.Errorf("Classify(192.168.1.10) = %+v", c)
	}

	c = p.Classify(context.Background(), netip.MustParseAddr("10.9.9.9"))
	if c != (Classification{}) {
		t.Errorf("Classify(10.9.9.9) = %+v, want zero value", c)
	}
}

func TestIPRouteClassifyUnavailable(t *testing.T) {
	p := NewIPRoute(newFakeRunner(nil), t.TempDir(), nil)
	if c := p.Classify(context.Background(), netip.MustParseAddr("192.168.1.50")); c.Type != Unknown {
		t.Errorf("Classify() = %+v, want Unknown", c)
	}
}

func TestIPRouteWirelessName(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"nmcli -t -f active,ssid dev wifi": "no:OfficeNet\nyes:HomeNet\n",
	})
	p := NewIPRoute(runner, t.TempDir(), nil)

	name, ok := p.WirelessName(context.Background(), "wlan0")
	if !ok || name != "HomeNet" {
		t.Errorf("WirelessName() = %q, %v", name, ok)
	}
	if runner.Called("iwgetid") {
		t.Error("iwgetid run although nmcli had an answer")
	}
}

func TestIPRouteWirelessNameFallback(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"iwgetid -r wlan0": "LabNet\n",
	})
	p := NewIPRoute(runner, t.TempDir(), nil)

	name, ok := p.WirelessName(context.Background(), "wlan0")
	if !ok || name != "LabNet" {
		t.Errorf("WirelessName() = %q, %v", name, ok)
	}

	p = NewIPRoute(newFakeRunner(nil), t.TempDir(), nil)
	if name, ok := p.WirelessName(context.Background(), "wlan0"); ok {
		t.Errorf("WirelessName() = %q, want none", name)
	}
}
