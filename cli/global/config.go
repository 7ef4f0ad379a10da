/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/schema"
	"github.com/UnifyEM/netid/common/uconfig"
)

// ConfigCandidates returns the files searched when --config is not given
func ConfigCandidates() []string {
	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ConfigFile))
	}
	return append(files, SystemConfig)
}

// DefaultConfigFile is where `config init` writes when no file is named
func DefaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFile
	}
	return filepath.Join(home, ConfigFile)
}

// LoadConfig builds the effective configuration. Later layers win:
// defaults, the JSON config file, NETID_* environment variables (after
// loading ~/.netid), then overrides, which are keyed like the config file.
func LoadConfig(file string, overrides map[string]string) (interfaces.Config, interfaces.Parameters, error) {
	var (
		conf interfaces.Config
		err  error
	)

	if file != "" {
		conf, err = uconfig.New(uconfig.WithLoad(file))
	} else {
		conf, err = uconfig.New(uconfig.WithFind(ConfigCandidates()))
		if errors.Is(err, uconfig.ErrNotFound) {
			conf, err = uconfig.New()
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load configuration: %w", err)
	}

	// Apply defaults and constraints to whatever the file provided
	p := schema.SetNetDefaults(conf)

	if err = loadEnvFile(); err != nil {
		return nil, nil, err
	}

	for _, key := range p.Keys() {
		if value, ok := os.LookupEnv(EnvName(key)); ok {
			p.Set(key, value)
		}
	}

	for key, value := range overrides {
		if !p.Exists(key) {
			return nil, nil, fmt.Errorf("unknown configuration key: %s", key)
		}
		p.Set(key, value)
	}

	return conf, p, nil
}

// EnvName returns the environment variable that overrides key
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// loadEnvFile loads ~/.netid without replacing variables already set
func loadEnvFile() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	err = godotenv.Load(filepath.Join(home, EnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to read %s: %w", EnvFile, err)
	}
	return nil
}

// InitConfig writes a configuration file holding the defaults. An existing
// file is only replaced when force is set.
func InitConfig(file string, force bool) (string, error) {
	if file == "" {
		file = DefaultConfigFile()
	}

	if _, err := os.Stat(file); err == nil && !force {
		return "", fmt.Errorf("%s already exists", file)
	}

	conf, err := uconfig.New()
	if err != nil {
		return "", err
	}
	schema.SetNetDefaults(conf)

	if err = conf.Save(file); err != nil {
		return "", fmt.Errorf("unable to write %s: %w", file, err)
	}
	return file, nil
}
