// Package proxy provides an abstraction over outbound proxy endpoints for
// scraping clients: a single static endpoint, a rotating pool backed by a
// proxy list file, and loaders that resolve either from settings.
//
// Both concrete types convert to the formats downstream libraries expect: a
// generic *url.URL, a playwright proxy descriptor, and an HTTP client proxy
// with an optional transport.
package proxy

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
	netproxy "golang.org/x/net/proxy"
)

// Scheme is the proxy protocol.
type Scheme string

const (
	SchemeHTTP   Scheme = "http"
	SchemeSOCKS5 Scheme = "socks5"
)

// Proxy is the common contract for proxy sources. A StaticProxy always
// resolves to the same endpoint; a RotatingProxy advances through its pool on
// every conversion call.
type Proxy interface {
	// URL returns the endpoint as a generic URL, credentials included as
	// userinfo when present.
	URL() *url.URL

	// Playwright returns the endpoint in the shape playwright's browser
	// launch options expect.
	Playwright() playwright.Proxy

	// ClientProxy returns the endpoint in the shape HTTP clients expect:
	// a server URL plus auth only when both credentials are set.
	ClientProxy() ClientProxy
}

// StaticProxy is one immutable proxy endpoint.
type StaticProxy struct {
	Scheme   Scheme
	Host     string
	Port     int
	Username string
	Password string
}

// ParseRow parses one line of a proxy list file. Accepted shapes are
// "host:port:username:password" and "host:port"; surrounding whitespace is
// trimmed first. The scheme is applied as-is; an empty scheme defaults to
// http.
func ParseRow(row string, scheme Scheme) (StaticProxy, error) {
	if scheme == "" {
		scheme = SchemeHTTP
	}

	trimmed := strings.TrimSpace(row)
	fields := strings.Split(trimmed, ":")

	var p StaticProxy
	switch len(fields) {
	case 2:
		p = StaticProxy{Scheme: scheme, Host: fields[0]}
	case 4:
		p = StaticProxy{Scheme: scheme, Host: fields[0], Username: fields[2], Password: fields[3]}
	default:
		return StaticProxy{}, &RowFormatError{Row: trimmed, Reason: "expected 'host:port:username:password' or 'host:port'"}
	}

	port, err := strconv.Atoi(fields[1])
	if err != nil {
		return StaticProxy{}, &RowFormatError{Row: trimmed, Reason: fmt.Sprintf("port %q is not a number", fields[1])}
	}
	if port < 1 || port > 65535 {
		return StaticProxy{}, &RowFormatError{Row: trimmed, Reason: fmt.Sprintf("port %d out of range 1-65535", port)}
	}
	p.Port = port

	return p, nil
}

// Server returns the endpoint authority as "scheme://host:port".
func (p StaticProxy) Server() string {
	return fmt.Sprintf("%s://%s:%d", p.Scheme, p.Host, p.Port)
}

// URL builds the endpoint URL. Partial credentials are preserved as given.
func (p StaticProxy) URL() *url.URL {
	u := &url.URL{
		Scheme: string(p.Scheme),
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
	}

	switch {
	case p.Username != "" && p.Password != "":
		u.User = url.UserPassword(p.Username, p.Password)
	case p.Username != "":
		u.User = url.User(p.Username)
	case p.Password != "":
		u.User = url.UserPassword("", p.Password)
	}

	return u
}

// Playwright returns the playwright launch descriptor. Credentials are passed
// through as-is; absent values stay nil.
func (p StaticProxy) Playwright() playwright.Proxy {
	out := playwright.Proxy{Server: p.Server()}
	if p.Username != "" {
		out.Username = playwright.String(p.Username)
	}
	if p.Password != "" {
		out.Password = playwright.String(p.Password)
	}
	return out
}

// ClientProxy returns the HTTP client descriptor. Auth is set only when both
// username and password are present.
func (p StaticProxy) ClientProxy() ClientProxy {
	c := ClientProxy{Server: p.Server()}
	if p.Username != "" && p.Password != "" {
		c.Auth = &BasicAuth{Username: p.Username, Password: p.Password}
	}
	return c
}

// BasicAuth is a username/password pair for proxy authentication.
type BasicAuth struct {
	Username string
	Password string
}

// ClientProxy is a proxy endpoint in the shape HTTP clients consume: the
// server URL and, when the endpoint is authenticated, credentials.
type ClientProxy struct {
	Server string
	Auth   *BasicAuth
}

// ProxyURL returns the server URL with auth embedded as userinfo.
func (c ClientProxy) ProxyURL() (*url.URL, error) {
	u, err := url.Parse(c.Server)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy server %q: %w", c.Server, err)
	}
	if c.Auth != nil {
		u.User = url.UserPassword(c.Auth.Username, c.Auth.Password)
	}
	return u, nil
}

// Transport builds an *http.Transport routed through the proxy. HTTP proxies
// use the standard CONNECT/absolute-URI path; SOCKS5 proxies dial through a
// SOCKS5 dialer.
func (c ClientProxy) Transport() (*http.Transport, error) {
	u, err := c.ProxyURL()
	if err != nil {
		return nil, err
	}

	if u.Scheme == string(SchemeSOCKS5) {
		var auth *netproxy.Auth
		if c.Auth != nil {
			auth = &netproxy.Auth{User: c.Auth.Username, Password: c.Auth.Password}
		}
		dialer, err := netproxy.SOCKS5("tcp", u.Host, auth, netproxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS dialer: %w", err)
		}

		tr := &http.Transport{}
		if cd, ok := dialer.(netproxy.ContextDialer); ok {
			tr.DialContext = cd.DialContext
		} else {
			tr.Dial = dialer.Dial
		}
		return tr, nil
	}

	return &http.Transport{Proxy: http.ProxyURL(u)}, nil
}
