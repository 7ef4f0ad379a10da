/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"errors"
	"net/netip"
	"strings"
	"sync"
)

// fakeRunner answers commands from a table keyed on the joined command line.
// Commands not in the table fail as if the executable were missing.
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	calls   []string
}

func newFakeRunner(outputs map[string]string) *fakeRunner {
	return &fakeRunner{outputs: outputs}
}

func (f *fakeRunner) Stdout(_ context.Context, cmdAndArgs ...string) (string, error) {
	key := strings.Join(cmdAndArgs, " ")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)

	out, ok := f.outputs[key]
	if !ok {
		return "", errors.New("exec: \"" + cmdAndArgs[0] + "\": executable file not found in $PATH")
	}
	return out, nil
}

func (f *fakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) Called(prefix string) bool {
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

type fixedPublicIP struct {
	addr netip.Addr
	err  error
}

func (f fixedPublicIP) Lookup(_ context.Context) (netip.Addr, error) {
	return f.addr, f.err
}

func fixedLocal(s string) func(context.Context) (netip.Addr, error) {
	return func(context.Context) (netip.Addr, error) {
		return netip.MustParseAddr(s), nil
	}
}

func noLocal(context.Context) (netip.Addr, error) {
	return netip.Addr{}, errors.New("network is unreachable")
}
