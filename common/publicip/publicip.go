/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package publicip asks an external service for the address this host's
// traffic appears to come from
package publicip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
	"github.com/UnifyEM/netid/common/schema"
)

const (
	maxBody        = 1024
	openDNSHost    = "myip.opendns.com"
	openDNSServer  = "208.67.222.222:53"
	defaultTimeout = schema.DefaultHTTPTimeout * time.Second
)

var ErrEmptyResponse = errors.New("empty response")

// Resolver looks up the public address over HTTPS and, optionally, falls
// back to OpenDNS
type Resolver struct {
	url       string
	client    *http.Client
	timeout   time.Duration
	dns       bool
	dnsServer string
	logger    interfaces.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithURL sets the HTTP endpoint. The body must be the address as plain
// text or a JSON object with an "ip" field.
func WithURL(url string) Option {
	return func(r *Resolver) {
		if url != "" {
			r.url = url
		}
	}
}

// WithTimeout bounds each lookup
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithClient replaces the HTTP client
func WithClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithDNSFallback enables or disables the OpenDNS lookup used when the
// HTTP endpoint fails
func WithDNSFallback(enabled bool) Option {
	return func(r *Resolver) {
		r.dns = enabled
	}
}

// WithDNSServer overrides the resolver queried for the DNS fallback
func WithDNSServer(address string) Option {
	return func(r *Resolver) {
		if address != "" {
			r.dnsServer = address
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func New(options ...Option) *Resolver {
	r := &Resolver{
		url:       schema.DefaultPublicIPURL,
		timeout:   defaultTimeout,
		dns:       true,
		dnsServer: openDNSServer,
		logger:    null.Logger(),
	}
	for _, option := range options {
		option(r)
	}
	if r.client == nil {
		r.client = newClient(r.timeout)
	}
	return r
}

// Lookup returns the public address
func (r *Resolver) Lookup(ctx context.Context) (netip.Addr, error) {
	start := time.Now()
	addr, err := r.fetch(ctx)
	if err == nil {
		r.logger.Debug(1300, "public IP resolved", fields.NewFields(
			fields.NewField("source", r.url),
			fields.NewField("public_ip", addr.String()),
			fields.NewField("elapsed", time.Since(start).String()),
		))
		return addr, nil
	}

	r.logger.Info(1301, "public IP endpoint failed", fields.NewFields(
		fields.NewField("source", r.url),
		fields.NewField("error", err.Error()),
	))

	if !r.dns {
		return netip.Addr{}, err
	}

	dnsAddr, dnsErr := r.resolveDNS(ctx)
	if dnsErr != nil {
		r.logger.Info(1302, "public IP DNS lookup failed", fields.NewFields(
			fields.NewField("server", r.dnsServer),
			fields.NewField("error", dnsErr.Error()),
		))
		return netip.Addr{}, errors.Join(err, dnsErr)
	}

	r.logger.Debug(1300, "public IP resolved", fields.NewFields(
		fields.NewField("source", r.dnsServer),
		fields.NewField("public_ip", dnsAddr.String()),
	))
	return dnsAddr, nil
}

func (r *Resolver) fetch(ctx context.Context) (netip.Addr, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid public IP URL: %w", err)
	}
	req.Header.Set("Accept", "text/plain, application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return netip.Addr{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return netip.Addr{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return netip.Addr{}, fmt.Errorf("http status %d", resp.StatusCode)
	}
	return ParseBody(body)
}

type jsonBody struct {
	IP string `json:"ip"`
}

// ParseBody accepts a bare address or {"ip": "<address>"}
func ParseBody(body []byte) (netip.Addr, error) {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return netip.Addr{}, ErrEmptyResponse
	}

	if strings.HasPrefix(text, "{") {
		var parsed jsonBody
		if err := json.Unmarshal([]byte(text), &parsed); err != nil {
			return netip.Addr{}, fmt.Errorf("invalid JSON response: %w", err)
		}
		text = strings.TrimSpace(parsed.IP)
		if text == "" {
			return netip.Addr{}, ErrEmptyResponse
		}
	}

	addr, err := netip.ParseAddr(text)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("response is not an IP address: %w", err)
	}
	return addr.Unmap(), nil
}

// resolveDNS asks OpenDNS for myip.opendns.com, which answers with the
// address of the querying host
func (r *Resolver) resolveDNS(ctx context.Context) (netip.Addr, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	server := r.dnsServer
	resolver := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			d := net.Dialer{Timeout: r.timeout}
			return d.DialContext(ctx, "udp", server)
		},
	}

	addrs, err := resolver.LookupNetIP(ctx, "ip4", openDNSHost)
	if err != nil {
		return netip.Addr{}, err
	}
	if len(addrs) == 0 {
		return netip.Addr{}, ErrEmptyResponse
	}
	return addrs[0].Unmap(), nil
}
