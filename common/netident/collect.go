/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"net/netip"
	"time"

	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
	"github.com/UnifyEM/netid/common/schema"
)

// PublicIPResolver returns the address the outside world sees.
// *publicip.Resolver satisfies it.
type PublicIPResolver interface {
	Lookup(ctx context.Context) (netip.Addr, error)
}

// Collector assembles a NetReport one field at a time. A field that cannot
// be resolved is left empty and never stops the remaining fields.
type Collector struct {
	platform     Platform
	runner       Runner
	logger       interfaces.Logger
	publicIP     PublicIPResolver
	probeAddress string
	probeTimeout time.Duration
	resolveLocal func(ctx context.Context) (netip.Addr, error)
}

// CollectorOption configures a Collector
type CollectorOption func(*Collector)

// WithLogger sets the logger
func WithLogger(logger interfaces.Logger) CollectorOption {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPublicIP sets the public IP resolver. Nil skips the lookup.
func WithPublicIP(r PublicIPResolver) CollectorOption {
	return func(c *Collector) {
		c.publicIP = r
	}
}

// WithProbe sets the address used to select the local address and the
// time allowed for the association
func WithProbe(address string, timeout time.Duration) CollectorOption {
	return func(c *Collector) {
		if address != "" {
			c.probeAddress = address
		}
		if timeout > 0 {
			c.probeTimeout = timeout
		}
	}
}

// WithLocalResolver replaces the socket-based local address lookup
func WithLocalResolver(fn func(ctx context.Context) (netip.Addr, error)) CollectorOption {
	return func(c *Collector) {
		c.resolveLocal = fn
	}
}

// NewCollector returns a Collector for platform. runner is used for the
// hostname command; the platform's providers carry their own runner.
func NewCollector(platform Platform, runner Runner, options ...CollectorOption) *Collector {
	c := &Collector{
		platform:     platform,
		runner:       runner,
		logger:       null.Logger(),
		probeAddress: schema.DefaultProbeAddress,
		probeTimeout: schema.DefaultHTTPTimeout * time.Second,
	}
	for _, option := range options {
		option(c)
	}
	if c.resolveLocal == nil {
		c.resolveLocal = func(ctx context.Context) (netip.Addr, error) {
			return ResolveLocal(ctx, c.probeAddress, c.probeTimeout)
		}
	}
	return c
}

// Collect runs every lookup in order and returns the report
func (c *Collector) Collect(ctx context.Context) schema.NetReport {
	report := schema.NewNetReport(c.platform.OS)
	c.logger.Debugf(1100, "collecting report %s on %s", report.ReportID, report.Platform)

	if name, ok := Hostname(ctx, c.runner); ok {
		report.Hostname = name
	} else {
		c.logger.Warning(1101, "hostname unavailable", nil)
	}

	local := c.LocalAddress(ctx)
	if local.IsValid() {
		report.LocalIP = local.String()
	}

	if c.publicIP != nil {
		if addr, err := c.publicIP.Lookup(ctx); err == nil {
			report.PublicIP = addr.String()
		} else {
			c.logger.Warning(1103, "public IP unavailable",
				fields.NewFields(fields.NewField("error", err.Error())))
		}
	}

	class := c.classify(ctx, local)
	report.InterfaceType = class.Type.ReportValue()
	report.InterfaceLabel = class.Label
	report.Interface = class.Device

	if class.Type == Wireless {
		if name, ok := c.wirelessName(ctx, class); ok {
			report.WirelessNetwork = name
		}
	}

	f := fields.NewFields()
	f.AppendMapString(report.ToMap())
	c.logger.Info(1110, "report collected", f)
	return report
}

// LocalAddress returns the outbound local address, or the zero Addr
func (c *Collector) LocalAddress(ctx context.Context) netip.Addr {
	addr, err := c.resolveLocal(ctx)
	if err != nil {
		c.logger.Warning(1102, "local address unavailable",
			fields.NewFields(fields.NewField("error", err.Error())))
		return netip.Addr{}
	}
	return addr
}

// Classify resolves the local address and classifies its interface
func (c *Collector) Classify(ctx context.Context) (netip.Addr, Classification) {
	local := c.LocalAddress(ctx)
	return local, c.classify(ctx, local)
}

// WirelessNetwork classifies the interface and, if it is wireless, returns
// the associated network name
func (c *Collector) WirelessNetwork(ctx context.Context) (Classification, string, bool) {
	_, class := c.Classify(ctx)
	if class.Type != Wireless {
		return class, "", false
	}
	name, ok := c.wirelessName(ctx, class)
	return class, name, ok
}

// classify never reaches the provider without a local address
func (c *Collector) classify(ctx context.Context, local netip.Addr) Classification {
	if !local.IsValid() {
		return Classification{}
	}

	class := c.platform.Interfaces.Classify(ctx, local)
	c.logger.Debug(1104, "classification", fields.NewFields(
		fields.NewField("provider", c.platform.Interfaces.Name()),
		fields.NewField("type", class.Type.String()),
		fields.NewField("device", class.Device),
	))
	return class
}

func (c *Collector) wirelessName(ctx context.Context, class Classification) (string, bool) {
	name, ok := c.platform.Wireless.WirelessName(ctx, class.Device)
	if !ok {
		c.logger.Info(1105, "wireless network name unavailable",
			fields.NewFields(fields.NewField("device", class.Device)))
	}
	return name, ok
}
