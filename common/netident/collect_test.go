/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/UnifyEM/netid/common/schema"
)

func linuxWirelessRunner() *fakeRunner {
	return newFakeRunner(map[string]string{
		"hostname":                         "workstation-7\n",
		"ip -o addr show":                  ipAddrShow,
		"nmcli -t -f active,ssid dev wifi": "no:OfficeNet\nyes:CafeWiFi\n",
	})
}

func TestCollectWireless(t *testing.T) {
	runner := linuxWirelessRunner()
	sysfs := sysfsWith(t, []string{"eth0"}, []string{"wlan0"})
	platform := ForOS("linux", runner, WithSysfs(sysfs))

	c := NewCollector(platform, runner,
		WithLocalResolver(fixedLocal("192.168.1.50")),
		WithPublicIP(fixedPublicIP{addr: netip.MustParseAddr("203.0.113.7")}),
	)

	r := c.Collect(context.Background())
	if r.Hostname != "workstation-7" {
		t.Errorf("Hostname = %q", r.Hostname)
	}
	if r.LocalIP != "192.168.1.50" {
		t.Errorf("LocalIP = %q", r.LocalIP)
	}
	if r.PublicIP != "203.0.113.7" {
		t.Errorf("PublicIP = %q", r.PublicIP)
	}
	if r.InterfaceType != schema.InterfaceWireless || r.Interface != "wlan0" {
		t.Errorf("interface = %q %q", r.InterfaceType, r.Interface)
	}
	if r.WirelessNetwork != "CafeWiFi" {
		t.Errorf("WirelessNetwork = %q", r.WirelessNetwork)
	}
	if r.Platform != "linux" || r.ReportID == "" || r.Collected == "" {
		t.Errorf("report metadata not set: %+v", r)
	}
}

func TestCollectWired(t *testing.T) {
	runner := linuxWirelessRunner()
	platform := ForOS("linux", runner, WithSysfs(sysfsWith(t, []string{"eth0"}, []string{"wlan0"})))

	c := NewCollector(platform, runner, WithLocalResolver(fixedLocal("192.168.1.10")))
	r := c.Collect(context.Background())

	if r.InterfaceType != schema.InterfaceWired || r.Interface != "eth0" {
		t.Errorf("interface = %q %q", r.InterfaceType, r.Interface)
	}
	if r.WirelessNetwork != "" {
		t.Errorf("WirelessNetwork = %q for a wired interface", r.WirelessNetwork)
	}
	if runner.Called("nmcli") {
		t.Error("nmcli run for a wired interface")
	}
	if r.PublicIP != "" {
		t.Errorf("PublicIP = %q with no resolver", r.PublicIP)
	}
}

func TestCollectNoLocalAddress(t *testing.T) {
	runner := linuxWirelessRunner()
	platform := ForOS("linux", runner, WithSysfs(t.TempDir()))

	c := NewCollector(platform, runner,
		WithLocalResolver(noLocal),
		WithPublicIP(fixedPublicIP{err: errors.New("offline")}),
	)
	r := c.Collect(context.Background())

	if r.LocalIP != "" || r.PublicIP != "" {
		t.Errorf("addresses = %q %q, want empty", r.LocalIP, r.PublicIP)
	}
	if r.InterfaceType != schema.InterfaceUnknown {
		t.Errorf("InterfaceType = %q", r.InterfaceType)
	}
	if r.Hostname != "workstation-7" {
		t.Errorf("Hostname = %q", r.Hostname)
	}
	for _, call := range runner.Calls() {
		if call != "hostname" {
			t.Errorf("unexpected command without a local address: %q", call)
		}
	}
}

func TestCollectUnsupportedPlatform(t *testing.T) {
	runner := newFakeRunner(map[string]string{"hostname": "box\n"})
	c := NewCollector(ForOS("plan9", runner), runner, WithLocalResolver(fixedLocal("10.0.0.2")))

	r := c.Collect(context.Background())
	if r.LocalIP != "10.0.0.2" || r.InterfaceType != schema.InterfaceUnknown {
		t.Errorf("report = %+v", r)
	}
}

func TestCollectorWirelessNetwork(t *testing.T) {
	runner := linuxWirelessRunner()
	platform := ForOS("linux", runner, WithSysfs(sysfsWith(t, nil, []string{"wlan0"})))
	c := NewCollector(platform, runner, WithLocalResolver(fixedLocal("192.168.1.50")))

	class, name, ok := c.WirelessNetwork(context.Background())
	if !ok || name != "CafeWiFi" || class.Device != "wlan0" {
		t.Errorf("WirelessNetwork() = %+v %q %v", class, name, ok)
	}

	local, class := c.Classify(context.Background())
	if local != netip.MustParseAddr("192.168.1.50") || class.Type != Wireless {
		t.Errorf("Classify() = %s %+v", local, class)
	}
}

func TestCollectDarwin(t *testing.T) {
	runner := newFakeRunner(map[string]string{
		"hostname":                           "macbook\n",
		"networksetup -listallhardwareports": hardwarePorts,
		"ipconfig getifaddr en1":             "192.168.1.50\n",
		"system_profiler SPAirPortDataType":  airPortText,
	})
	c := NewCollector(ForOS("darwin", runner), runner, WithLocalResolver(fixedLocal("192.168.1.50")))

	r := c.Collect(context.Background())
	if r.InterfaceType != schema.InterfaceWireless || r.InterfaceLabel != "Wi-Fi" || r.Interface != "en1" {
		t.Errorf("interface = %q %q %q", r.InterfaceType, r.InterfaceLabel, r.Interface)
	}
	if r.WirelessNetwork != "MyHomeNet" {
		t.Errorf("WirelessNetwork = %q", r.WirelessNetwork)
	}
}
