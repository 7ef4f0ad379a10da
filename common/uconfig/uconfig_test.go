/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndFind(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "netid.json")

	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	s := c.NewSet("netid")
	s.SetConstraint("command_timeout", 1, 300, 5)
	s.Set("command_timeout", 12)
	s.SetConstraint("public_ip_url", 0, 0, "https://api.ipify.org")

	if err = c.Save(file); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := New(WithFind([]string{"", filepath.Join(dir, "missing.json"), file}))
	if err != nil {
		t.Fatalf("New(WithFind) error: %v", err)
	}
	if loaded.File() != file {
		t.Errorf("File() = %q, want %q", loaded.File(), file)
	}

	set := loaded.GetSet("netid")
	if set == nil {
		t.Fatal("set netid not loaded")
	}
	if got := set.Get("command_timeout").Int(); got != 12 {
		t.Errorf("command_timeout = %d, want 12", got)
	}
	if got := set.Get("public_ip_url").String(); got != "https://api.ipify.org" {
		t.Errorf("public_ip_url = %q", got)
	}
}

func TestFindNothing(t *testing.T) {
	_, err := New(WithFind([]string{filepath.Join(t.TempDir(), "nope.json")}))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithLoad(file)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestDump(t *testing.T) {
	c, _ := New()
	c.NewSet("netid").SetConstraint("probe_address", 0, 0, "8.8.8.8:80")

	out, err := c.Dump()
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if !strings.Contains(out, `"probe_address": "8.8.8.8:80"`) {
		t.Errorf("Dump() = %s", out)
	}
}
