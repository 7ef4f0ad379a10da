/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"net/netip"

	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
	"github.com/UnifyEM/netid/common/schema"
)

// Platform bundles the provider and extractor for one operating system
type Platform struct {
	OS         string
	Interfaces InterfaceTextProvider
	Wireless   WirelessNameExtractor
}

// Supported reports whether the platform has real implementations
func (p Platform) Supported() bool {
	_, unsupported := p.Interfaces.(unsupportedPlatform)
	return !unsupported
}

type platformOptions struct {
	sysfs  string
	logger interfaces.Logger
}

// PlatformOption configures ForOS
type PlatformOption func(*platformOptions)

// WithSysfs overrides the directory holding per-interface entries on Linux
func WithSysfs(path string) PlatformOption {
	return func(o *platformOptions) {
		o.sysfs = path
	}
}

// WithPlatformLogger sets the logger used by the providers
func WithPlatformLogger(logger interfaces.Logger) PlatformOption {
	return func(o *platformOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ForOS selects the implementation for goos (normally runtime.GOOS).
// Unsupported systems get a platform that always reports Unknown.
func ForOS(goos string, runner Runner, opts ...PlatformOption) Platform {
	o := &platformOptions{sysfs: schema.DefaultSysfsNet, logger: null.Logger()}
	for _, opt := range opts {
		opt(o)
	}

	switch goos {
	case "darwin":
		hp := NewHardwarePorts(runner, o.logger)
		return Platform{OS: goos, Interfaces: hp, Wireless: hp}
	case "linux":
		ir := NewIPRoute(runner, o.sysfs, o.logger)
		return Platform{OS: goos, Interfaces: ir, Wireless: ir}
	default:
		return Platform{OS: goos, Interfaces: unsupportedPlatform{}, Wireless: unsupportedPlatform{}}
	}
}

type unsupportedPlatform struct{}

func (unsupportedPlatform) Name() string {
	return "unsupported"
}

func (unsupportedPlatform) Classify(_ context.Context, _ netip.Addr) Classification {
	return Classification{}
}

func (unsupportedPlatform) WirelessName(_ context.Context, _ string) (string, bool) {
	return "", false
}
