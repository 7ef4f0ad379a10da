//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/netid/cli/display"
	configCmd "github.com/UnifyEM/netid/cli/functions/config"
	"github.com/UnifyEM/netid/cli/functions/iftype"
	"github.com/UnifyEM/netid/cli/functions/report"
	"github.com/UnifyEM/netid/cli/functions/version"
	"github.com/UnifyEM/netid/cli/functions/wifi"
	"github.com/UnifyEM/netid/cli/global"
	"github.com/UnifyEM/netid/cli/util"
	"github.com/UnifyEM/netid/common/schema"
)

type persistentFlags struct {
	configFile  string
	debug       bool
	logFile     string
	timeout     int
	httpTimeout int
	set         []string
}

func main() {
	var err error
	var flags persistentFlags
	var reportOpts report.Options

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the root command. With no subcommand it runs the report.
	rootCmd := &cobra.Command{
		Use:           progName,
		Short:         global.Description,
		Long:          global.LongDescription,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSession(cmd) {
				return nil
			}
			o, err := overrides(cmd, flags)
			if err != nil {
				return err
			}
			s, err := global.NewSession(flags.configFile, o)
			if err != nil {
				return err
			}
			global.Current = s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Execute(cmd.Context(), cmd.OutOrStdout(), global.Current, reportOpts)
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "configuration file (default ~/"+global.ConfigFile+" or "+global.SystemConfig+")")
	pf.BoolVar(&flags.debug, "debug", false, "write debug messages to stderr")
	pf.StringVar(&flags.logFile, "log-file", "", "log file")
	pf.IntVar(&flags.timeout, "timeout", schema.DefaultCommandTimeout, "per-command timeout in seconds")
	pf.IntVar(&flags.httpTimeout, "http-timeout", schema.DefaultHTTPTimeout, "network timeout in seconds")
	pf.StringArrayVar(&flags.set, "set", nil, "override a configuration key (key=value, repeatable)")
	report.AddFlags(rootCmd, &reportOpts)

	// Add the functions
	rootCmd.AddCommand(report.Register())
	rootCmd.AddCommand(iftype.Register())
	rootCmd.AddCommand(wifi.Register())
	rootCmd.AddCommand(configCmd.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.ExecuteContext(ctx)
	global.Current.Close()
	if err != nil {
		display.ErrorWrapper(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// skipSession is true for commands that never read the configuration
func skipSession(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "init":
		return true
	}
	return false
}

// overrides converts the flags the user actually set into config keys.
// Dedicated flags win over --set.
func overrides(cmd *cobra.Command, flags persistentFlags) (map[string]string, error) {
	o := make(map[string]string)
	f := cmd.Flags()

	if f.Changed("debug") {
		o[schema.ConfigDebug] = strconv.FormatBool(flags.debug)
	}
	if f.Changed("log-file") {
		o[schema.ConfigLogFile] = flags.logFile
	}
	if f.Changed("timeout") {
		o[schema.ConfigCommandTimeout] = strconv.Itoa(flags.timeout)
	}
	if f.Changed("http-timeout") {
		o[schema.ConfigHTTPTimeout] = strconv.Itoa(flags.httpTimeout)
	}

	pairs, err := util.NewNVPairs(flags.set)
	if err != nil {
		return nil, err
	}
	pairs.Merge(o)
	return o, nil
}
