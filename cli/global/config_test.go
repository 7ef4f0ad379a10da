/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/UnifyEM/netid/common/schema"
)

// isolate points HOME at an empty directory so the user's own files
// do not leak into the test
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		schema.ConfigCommandTimeout, schema.ConfigHTTPTimeout, schema.ConfigPublicIPURL,
		schema.ConfigPublicIPDNS, schema.ConfigProbeAddress, schema.ConfigSysfsNet,
		schema.ConfigLogFile, schema.ConfigLogRetention, schema.ConfigDebug,
	} {
		t.Setenv(EnvName(key), "")
		_ = os.Unsetenv(EnvName(key))
	}
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	conf, p, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if conf.File() != "" && conf.File() != SystemConfig {
		t.Errorf("unexpected config file %q", conf.File())
	}
	if got := p.Get(schema.ConfigCommandTimeout).Int(); got != schema.DefaultCommandTimeout {
		t.Errorf("command_timeout = %d", got)
	}
	if got := p.Get(schema.ConfigPublicIPURL).String(); got != schema.DefaultPublicIPURL {
		t.Errorf("public_ip_url = %q", got)
	}
	if !p.Get(schema.ConfigPublicIPDNS).Bool() {
		t.Error("public_ip_dns should default to true")
	}
}

func TestLoadConfigLayers(t *testing.T) {
	home := isolate(t)

	file := filepath.Join(t.TempDir(), "netid.json")
	content := `{"netid":{"command_timeout":"20","http_timeout":"30","sysfs_net":"/tmp/net"}}`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// ~/.netid supplies http_timeout, the real environment wins for sysfs_net
	env := "NETID_HTTP_TIMEOUT=40\nNETID_SYSFS_NET=/from/dotenv\n"
	if err := os.WriteFile(filepath.Join(home, EnvFile), []byte(env), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvName(schema.ConfigSysfsNet), "/from/env")

	_, p, err := LoadConfig(file, map[string]string{schema.ConfigCommandTimeout: "2"})
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if got := p.Get(schema.ConfigCommandTimeout).Int(); got != 2 {
		t.Errorf("command_timeout = %d, want flag value 2", got)
	}
	if got := p.Get(schema.ConfigHTTPTimeout).Int(); got != 40 {
		t.Errorf("http_timeout = %d, want env file value 40", got)
	}
	if got := p.Get(schema.ConfigSysfsNet).String(); got != "/from/env" {
		t.Errorf("sysfs_net = %q, want /from/env", got)
	}
}

func TestLoadConfigConstraints(t *testing.T) {
	isolate(t)
	t.Setenv(EnvName(schema.ConfigCommandTimeout), "9999")

	_, p, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got := p.Get(schema.ConfigCommandTimeout).Int(); got != schema.DefaultCommandTimeout {
		t.Errorf("command_timeout = %d, want default for out of range value", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	isolate(t)

	if _, _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Error("expected an error for a missing --config file")
	}
	if _, _, err := LoadConfig("", map[string]string{"no_such_key": "1"}); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestInitConfig(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "sub", "netid.json")

	written, err := InitConfig(file, false)
	if err != nil || written != file {
		t.Fatalf("InitConfig() = %q, %v", written, err)
	}
	if _, err = InitConfig(file, false); err == nil {
		t.Error("expected an error when the file exists")
	}
	if _, err = InitConfig(file, true); err != nil {
		t.Errorf("InitConfig(force) error: %v", err)
	}

	_, p, err := LoadConfig(file, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got := p.Get(schema.ConfigProbeAddress).String(); got != schema.DefaultProbeAddress {
		t.Errorf("probe_address = %q", got)
	}
}
