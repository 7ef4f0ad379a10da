/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"runtime"

	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/netident"
	"github.com/UnifyEM/netid/common/publicip"
	"github.com/UnifyEM/netid/common/runCmd"
	"github.com/UnifyEM/netid/common/schema"
	"github.com/UnifyEM/netid/common/ulogger"
)

// Session holds the configuration and logger for one invocation
type Session struct {
	Config interfaces.Config
	Params interfaces.Parameters
	Logger interfaces.Logger
	GOOS   string
	closer func()
}

// Current is set by the root command before any subcommand runs
var Current *Session

// NewSession loads the configuration and opens the logger
func NewSession(file string, overrides map[string]string) (*Session, error) {
	conf, p, err := LoadConfig(file, overrides)
	if err != nil {
		return nil, err
	}

	options := []ulogger.Option{
		ulogger.WithPrefix(Name),
		ulogger.WithLogFile(p.Get(schema.ConfigLogFile).String()),
		ulogger.WithRetention(p.Get(schema.ConfigLogRetention).Int()),
		ulogger.WithDebug(p.Get(schema.ConfigDebug).Bool()),
	}

	// stdout belongs to the report, so the console only sees debug runs
	if p.Get(schema.ConfigDebug).Bool() {
		options = append(options, ulogger.WithConsole(os.Stderr))
	}

	logger, err := ulogger.New(options...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Config: conf,
		Params: p,
		Logger: logger,
		GOOS:   runtime.GOOS,
		closer: logger.Close,
	}

	f := fields.NewFields(fields.NewField("config", conf.File()))
	f.AppendMapString(p.GetMap())
	logger.Debug(1000, "configuration loaded", f)
	return s, nil
}

// Close releases the log file
func (s *Session) Close() {
	if s != nil && s.closer != nil {
		s.closer()
	}
}

// Runner returns a command runner bounded by command_timeout
func (s *Session) Runner() *runCmd.Runner {
	return runCmd.New(s.Params.Get(schema.ConfigCommandTimeout).Seconds(), s.Logger)
}

// PublicIP returns the public IP resolver
func (s *Session) PublicIP() *publicip.Resolver {
	return publicip.New(
		publicip.WithURL(s.Params.Get(schema.ConfigPublicIPURL).String()),
		publicip.WithTimeout(s.Params.Get(schema.ConfigHTTPTimeout).Seconds()),
		publicip.WithDNSFallback(s.Params.Get(schema.ConfigPublicIPDNS).Bool()),
		publicip.WithLogger(s.Logger),
	)
}

// Collector returns a collector for the running platform. withPublicIP
// controls whether the public address is looked up.
func (s *Session) Collector(withPublicIP bool) *netident.Collector {
	runner := s.Runner()
	platform := netident.ForOS(s.GOOS, runner,
		netident.WithSysfs(s.Params.Get(schema.ConfigSysfsNet).String()),
		netident.WithPlatformLogger(s.Logger),
	)

	if !platform.Supported() {
		s.Logger.Warningf(1001, "interface detection is not supported on %s", s.GOOS)
	}

	options := []netident.CollectorOption{
		netident.WithLogger(s.Logger),
		netident.WithProbe(
			s.Params.Get(schema.ConfigProbeAddress).String(),
			s.Params.Get(schema.ConfigHTTPTimeout).Seconds(),
		),
	}
	if withPublicIP {
		options = append(options, netident.WithPublicIP(s.PublicIP()))
	}
	return netident.NewCollector(platform, runner, options...)
}
