/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"
)

// ResolveLocal returns the address the routing table would use as the
// source for traffic to target. A UDP socket bound to the wildcard address
// is associated with target; no datagram is sent.
func ResolveLocal(ctx context.Context, target string, timeout time.Duration) (netip.Addr, error) {
	d := net.Dialer{
		Timeout:   timeout,
		LocalAddr: &net.UDPAddr{},
	}

	conn, err := d.DialContext(ctx, "udp", target)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("unable to associate with %s: %w", target, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}

	addr := udpAddr.AddrPort().Addr().Unmap()
	if !addr.IsValid() || addr.IsUnspecified() {
		return netip.Addr{}, fmt.Errorf("no local address selected for %s", target)
	}
	return addr, nil
}
